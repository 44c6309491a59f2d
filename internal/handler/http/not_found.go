// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound answers unknown routes with {"error":"not found"}. It is also
// registered as the MethodNotAllowed handler, so a known path called with an
// unsupported method looks exactly like a missing one.
func notFound(w http.ResponseWriter, _ *http.Request) {
	writeJSONError(w, msgNotFound, http.StatusNotFound)
}
