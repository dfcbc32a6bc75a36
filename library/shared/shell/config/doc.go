// Package config turns environment settings into a ready tablestore.Backend and optional OTel providers.
//
// Settings are read from LIBRARYDESK_* variables and validated before any connection is opened:
//
//	settings, err := config.LoadStoreSettings()
//	backend, closer, err := config.OpenBackend(ctx, settings, config.Observability{Logger: logger})
//	defer closer.Close()
package config
