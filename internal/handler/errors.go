package handler

import "errors"

var errNoHandlersAreCreated = errors.New("no handlers are created: server http address is empty")
