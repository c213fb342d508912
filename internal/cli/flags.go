package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

func intFlag(fs *pflag.FlagSet, name string) (int, error) {
	v, err := fs.GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return v, nil
}
