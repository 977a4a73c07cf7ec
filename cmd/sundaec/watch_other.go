//go:build !linux

package main

import "github.com/pkg/errors"

func watch(filename string, cfg *config, rebuild func()) error {
	return errors.New("-watch is only supported on Linux")
}
