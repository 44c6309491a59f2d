// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strconv"

	"github.com/MKhiriev/go-blog/models"
)

// Field names used by the rule chains. They match the JSON and form keys of
// the request payloads.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldURL             = "url"
	FieldTitle           = "title"
)

// Messages returned to clients.
const (
	MsgEmailNotValid     = "email is not valid"
	MsgPasswordBlank     = "password cannot be blank"
	MsgPasswordTooShort  = "password must be at least 4 characters long"
	MsgPasswordsMismatch = "passwords don't match"
	MsgIncorrectURL      = "incorrect url"
	MsgTitleTooLong      = "title is too long"
)

// MaxTitleLength is the longest accepted post title, in characters.
const MaxTitleLength = 256

// rule applies a validator tag to one field. When other is set the tag is a
// cross-field tag (e.g. eqfield) compared against that field's value.
type rule struct {
	field   string
	tag     string
	other   string
	message string
}

var postRules = []rule{
	{field: FieldURL, tag: "isurl", message: MsgIncorrectURL},
	{field: FieldTitle, tag: "max=" + strconv.Itoa(MaxTitleLength), message: MsgTitleTooLong},
}

var chains = map[models.ActionType][]rule{
	models.ActionLogin: {
		{field: FieldEmail, tag: "email", message: MsgEmailNotValid},
		{field: FieldPassword, tag: "min=1", message: MsgPasswordBlank},
	},
	models.ActionRegister: {
		{field: FieldEmail, tag: "email", message: MsgEmailNotValid},
		{field: FieldEmail, tag: "allowlisted", message: MsgEmailNotValid},
		{field: FieldPassword, tag: "min=4", message: MsgPasswordTooShort},
		{field: FieldPassword, tag: "eqfield", other: FieldConfirmPassword, message: MsgPasswordsMismatch},
	},
	models.ActionCreatePost: postRules,
	models.ActionUpdatePost: postRules,
}

// fieldValues exposes the validated payload as field name -> value.
func fieldValues(obj any) (map[string]string, error) {
	switch value := obj.(type) {
	case models.Credentials:
		return credentialValues(value), nil
	case *models.Credentials:
		return credentialValues(*value), nil
	case models.PostRequest:
		return postValues(value), nil
	case *models.PostRequest:
		return postValues(*value), nil
	default:
		return nil, ErrUnsupportedType
	}
}

func credentialValues(c models.Credentials) map[string]string {
	return map[string]string{
		FieldEmail:           c.Email,
		FieldPassword:        c.Password,
		FieldConfirmPassword: c.ConfirmPassword,
	}
}

func postValues(p models.PostRequest) map[string]string {
	return map[string]string{
		FieldURL:   p.URL,
		FieldTitle: p.Title,
	}
}
