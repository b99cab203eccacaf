package http

import (
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(400, "Wrong body")
)
