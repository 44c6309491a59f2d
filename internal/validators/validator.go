// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-playground/validator/v10"
)

// ActionValidator runs the rule chain registered for an action type.
type ActionValidator struct {
	validate  *validator.Validate
	allowlist map[string]struct{}
}

// NewActionValidator builds a Validator. A non-empty allowlist restricts
// registration to the listed e-mail addresses.
func NewActionValidator(registrationAllowlist []string) (Validator, error) {
	v := &ActionValidator{
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		allowlist: make(map[string]struct{}, len(registrationAllowlist)),
	}

	for _, email := range registrationAllowlist {
		v.allowlist[utils.NormalizeEmail(email)] = struct{}{}
	}

	if err := v.validate.RegisterValidation("isurl", isURL); err != nil {
		return nil, fmt.Errorf("error registering isurl validation: %w", err)
	}
	if err := v.validate.RegisterValidation("allowlisted", v.isAllowlisted); err != nil {
		return nil, fmt.Errorf("error registering allowlisted validation: %w", err)
	}

	return v, nil
}

func (v *ActionValidator) Validate(ctx context.Context, action models.ActionType, obj any) error {
	chain, ok := chains[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedAction, action)
	}

	values, err := fieldValues(obj)
	if err != nil {
		return err
	}

	for _, r := range chain {
		value, ok := values[r.field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, r.field)
		}

		if r.other != "" {
			err = v.validate.VarWithValue(value, values[r.other], r.tag)
		} else {
			err = v.validate.Var(value, r.tag)
		}
		if err != nil {
			return &ValidationError{Field: r.field, Message: r.message}
		}
	}

	return nil
}

func (v *ActionValidator) isAllowlisted(fl validator.FieldLevel) bool {
	if len(v.allowlist) == 0 {
		return true
	}
	_, ok := v.allowlist[utils.NormalizeEmail(fl.Field().String())]
	return ok
}

var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// isURL accepts absolute http(s)/ftp URLs and scheme-less host[/path]
// strings. The host must be localhost, an IP address or a domain with a TLD.
func isURL(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" || strings.ContainsAny(raw, " \t\r\n") {
		return false
	}

	if !schemePrefix.MatchString(raw) {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	switch u.Scheme {
	case "http", "https", "ftp":
	default:
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if host == "localhost" || net.ParseIP(host) != nil {
		return true
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}

	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
