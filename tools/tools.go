//go:build tools

// Package tools pins the versions of development tools: go generate ./... needs mockgen.
package tools

import (
	_ "github.com/daixiang0/gci"
	_ "github.com/golang/mock/mockgen"
	_ "mvdan.cc/gofumpt"
)
