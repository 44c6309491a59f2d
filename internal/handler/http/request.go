// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

const (
	maxBodyBytes     = 1 << 20
	multipartMaxSize = 1 << 20
)

// decodeRequest fills dst from a JSON, urlencoded or multipart form body.
// A missing Content-Type is treated as JSON. dst must be a pointer to a
// struct whose string fields carry `form` tags.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType := "application/json"
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
		}
		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		return nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		return bindForm(r.PostForm, dst)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMaxSize); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		return bindForm(r.PostForm, dst)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}
}

// bindForm copies form values into the tagged string fields of dst.
func bindForm(values url.Values, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: cannot bind form into %T", ErrInvalidRequestBody, dst)
	}

	v = v.Elem()
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		name := field.Tag.Get("form")
		if name == "" || field.Type.Kind() != reflect.String {
			continue
		}
		v.Field(i).SetString(values.Get(name))
	}

	return nil
}

type requestBodyCtxKey struct{}

func withRequestBody(ctx context.Context, body any) context.Context {
	return context.WithValue(ctx, requestBodyCtxKey{}, body)
}

// requestBodyFromContext returns the body decoded by validateRequest.
func requestBodyFromContext[T any](ctx context.Context) (T, bool) {
	body, ok := ctx.Value(requestBodyCtxKey{}).(T)
	return body, ok
}

// postIDFromRequest parses the {id} path parameter.
func postIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPostID
	}
	return id, nil
}

// paginationFromRequest parses the optional limit and offset query parameters.
// Values must fit a signed 64-bit SQL integer.
func paginationFromRequest(r *http.Request) (limit, offset uint64, err error) {
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		if limit, err = strconv.ParseUint(raw, 10, 63); err != nil {
			return 0, 0, fmt.Errorf("%w: limit %q", ErrInvalidPagination, raw)
		}
	}
	if raw := query.Get("offset"); raw != "" {
		if offset, err = strconv.ParseUint(raw, 10, 63); err != nil {
			return 0, 0, fmt.Errorf("%w: offset %q", ErrInvalidPagination, raw)
		}
	}

	return limit, offset, nil
}
