// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storj.io/uplinkmeta/internal/foreign"
	"storj.io/uplinkmeta/metadata"
)

// cmdShow prints the custom metadata of an item after a round-trip through
// its exported representation.
func cmdShow(cmd *cobra.Command, args []string) error {
	showSystem, err := cmd.Flags().GetBool("system")
	if err != nil {
		return err
	}

	return withLogger(func(log *zap.Logger) error {
		item, err := LoadItem(args[0])
		if err != nil {
			return err
		}

		custom, err := roundTrip(log, item.Custom)
		if err != nil {
			return err
		}

		if err := custom.Verify(); err != nil {
			log.Warn("custom metadata isn't valid UTF-8", zap.Error(err))
		}

		out := cmd.OutOrStdout()
		if len(args) == 2 {
			return printValue(out, custom, args[1])
		}

		if err := printCustom(out, custom); err != nil {
			return err
		}
		if showSystem {
			printSystem(out, item.System, time.Now())
		}
		return nil
	})
}

// cmdSet sets the value of a key in an item file.
func cmdSet(cmd *cobra.Command, args []string) error {
	key, err := parseJSONString(args[1])
	if err != nil {
		return err
	}
	value, err := parseJSONString(args[2])
	if err != nil {
		return err
	}

	return withLogger(func(log *zap.Logger) error {
		item, err := LoadItem(args[0])
		if err != nil {
			return err
		}

		replaced := item.Custom.Insert(key, value)
		if err := item.Custom.Verify(); err != nil {
			return err
		}
		if err := SaveItem(args[0], item); err != nil {
			return err
		}

		log.Info("custom metadata set", zap.String("key", key), zap.Bool("replaced", replaced))
		return nil
	})
}

// cmdRemove removes a key from an item file.
func cmdRemove(cmd *cobra.Command, args []string) error {
	key, err := parseJSONString(args[1])
	if err != nil {
		return err
	}

	return withLogger(func(log *zap.Logger) error {
		item, err := LoadItem(args[0])
		if err != nil {
			return err
		}

		if !item.Custom.Delete(key) {
			return Error.New("key does not exist")
		}
		if err := SaveItem(args[0], item); err != nil {
			return err
		}

		log.Info("custom metadata removed", zap.String("key", key))
		return nil
	})
}

// roundTrip exports custom and imports the result back, which is what the
// uplink C bindings do when an item is uploaded and downloaded.
func roundTrip(log *zap.Logger, custom *metadata.Custom) (*metadata.Custom, error) {
	desc, err := custom.Export().Foreign()
	if err != nil {
		return nil, err
	}
	log.Debug("exported custom metadata",
		zap.Uint64("entries", uint64(desc.Count)),
		zap.Uint64("generation", custom.Generation()))

	return foreign.Import(desc)
}

// parseJSONString unescapes s as the content of a JSON string, so keys and
// values can contain escaped characters such as \u0000.
func parseJSONString(s string) (string, error) {
	var parsed string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &parsed); err != nil {
		return "", Error.New("invalid escaping in %q: %v", s, err)
	}
	return parsed, nil
}

func printValue(out io.Writer, custom *metadata.Custom, rawKey string) error {
	key, err := parseJSONString(rawKey)
	if err != nil {
		return err
	}

	value, ok := custom.Get(key)
	if !ok {
		return Error.New("key does not exist")
	}

	str, err := json.Marshal(value)
	if err != nil {
		return Error.Wrap(err)
	}

	_, err = fmt.Fprintf(out, "%s\n", str[1:len(str)-1])
	return err
}

func printCustom(out io.Writer, custom *metadata.Custom) error {
	if custom.Count() == 0 {
		_, err := fmt.Fprintf(out, "{}\n")
		return err
	}

	str, err := json.MarshalIndent(custom.Map(), "", "  ")
	if err != nil {
		return Error.Wrap(err)
	}

	_, err = fmt.Fprintf(out, "%s\n", str)
	return err
}

func printSystem(out io.Writer, system metadata.System, now time.Time) {
	fmt.Fprintf(out, "created: %s (%s)\n",
		system.Created.Format(time.RFC3339), humanize.RelTime(system.Created, now, "ago", "from now"))

	switch {
	case !system.Expiring():
		fmt.Fprintf(out, "expires: never\n")
	case system.Expired(now):
		fmt.Fprintf(out, "expires: %s (expired)\n", system.Expires.Format(time.RFC3339))
	default:
		fmt.Fprintf(out, "expires: %s (%s)\n",
			system.Expires.Format(time.RFC3339), humanize.RelTime(system.Expires, now, "ago", "from now"))
	}

	if system.ContentLength < 0 {
		fmt.Fprintf(out, "content length: %d\n", system.ContentLength)
		return
	}
	fmt.Fprintf(out, "content length: %s (%d bytes)\n",
		humanize.IBytes(uint64(system.ContentLength)), system.ContentLength)
}
