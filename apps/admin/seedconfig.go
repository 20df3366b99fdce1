package main

import (
	"context"

	"github.com/dineshpandey3618-web/Rank1/core/appconfig"
)

// seedConfig inserts the default app config keys where absent; existing
// values are left alone.
func (cli *commandLine) seedConfig() error {
	ctx := context.Background()
	for key, val := range appconfig.Defaults() {
		if err := cli.cfgRepo.InsertIfAbsent(ctx, key, val); err != nil {
			return err
		}
	}
	return nil
}
