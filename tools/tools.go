//go:build tools
// +build tools

package tools

import (
	_ "go.uber.org/mock/mockgen"
)

//go:generate go run go.uber.org/mock/mockgen -package=auction -destination=../auction/mock.go -source=../auction/interfaces.go
//go:generate go run go.uber.org/mock/mockgen -package=redis -destination=../adapters/redis/mock.go -source=../adapters/redis/interfaces.go
//go:generate go generate ./oapi-codegen
