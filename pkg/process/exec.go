// Copyright (C) 2018 Storj Labs, Inc.
// See LICENSE for copying information.

package process

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
)

// Error is a process error class.
var Error = errs.Class("process")

var configFile = flag.String("config", "", "config file, defaults to ~/.storj/<command>.yaml")

// DefaultConfigPath returns the default config file of the named command.
func DefaultConfigPath(name string) string {
	if name == "" {
		name = filepath.Base(os.Args[0])
	}
	path := filepath.Join(".storj", fmt.Sprintf("%s.yaml", name))
	home, err := homedir.Dir()
	if err != nil {
		log.Println(err)
		return path
	}
	return filepath.Join(home, path)
}

// Execute runs a *cobra.Command with the process arguments and sets up
// process-wide configuration like a configuration file and logging.
func Execute(cmd *cobra.Command) {
	Must(Exec(cmd, os.Args[1:]))
}

// Exec runs cmd with args. Flags which aren't set on the command line take
// their value from the environment (prefixed with the upper case name of the
// root command) or from the config file.
func Exec(cmd *cobra.Command, args []string) error {
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	cmd.SetArgs(args)

	prerun := cmd.PersistentPreRunE
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		if prerun != nil {
			return prerun(cmd, args)
		}
		return nil
	}

	return cmd.Execute()
}

// loadConfig sets the flags of cmd which weren't changed on the command line
// from the environment and the config file.
func loadConfig(cmd *cobra.Command) error {
	vip := viper.New()
	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return Error.Wrap(err)
	}

	vip.SetEnvPrefix(cmd.Root().Name())
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	vip.AutomaticEnv()

	path := *configFile
	if path == "" {
		path = DefaultConfigPath(cmd.Root().Name())
	}
	vip.SetConfigFile(path)
	if err := vip.ReadInConfig(); err != nil {
		// the config file is optional unless it's explicitly set.
		if *configFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return Error.New("unable to read config %q: %v", path, err)
		}
	}

	var errlist errs.Group
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !vip.IsSet(f.Name) {
			return
		}
		errlist.Add(cmd.Flags().Set(f.Name, vip.GetString(f.Name)))
	})
	return Error.Wrap(errlist.Err())
}

// Must checks for errors.
func Must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
