// Package modkit provides module wiring and core deps
package modkit

import (
	"sensutv/internal/platform/config"
	"sensutv/internal/platform/logger"
	"sensutv/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log  logger.Logger
	Cfg  config.Conf
	Docs store.Blob
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the doc store
func (d Deps) ZeroOK() bool { return true }
