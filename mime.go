// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

// MIME type constants for common media types, for convenience when
// registering server types with New.
const (
	MIMEApplicationJSON = "application/json"
	MIMETextHTML        = "text/html"
	MIMEApplicationXML  = "application/xml"
	MIMETextXML         = "text/xml"
	MIMETextPlain       = "text/plain"
	MIMEApplicationForm = "application/x-www-form-urlencoded"
	MIMEMultipartForm   = "multipart/form-data"
	MIMEApplicationYAML = "application/yaml"
)
