// Package common contains shared constants and small helpers used across
// recipeshare components.
package common

// RequestIDHeaderName is the HTTP header carrying the per-request correlation
// id on outbound API calls.
const RequestIDHeaderName = "X-Request-ID"

// UploadsPath is the backend prefix under which recipe images are served.
const UploadsPath = "/uploads/"

// PlaceholderImageURL is shown for recipes that have no image.
const PlaceholderImageURL = "https://placehold.co/400x200/cccccc/333333?text=No+Image"

// AllowedImageExtensions lists the image types the backend accepts.
var AllowedImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}
