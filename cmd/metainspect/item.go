// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"storj.io/uplinkmeta/metadata"
)

// Error is the error class of metainspect.
var Error = errs.Class("metainspect")

// Item is the metadata of a stored item as kept in an item file.
type Item struct {
	Custom *metadata.Custom
	System metadata.System
}

type itemFile struct {
	Custom map[string]string `yaml:"custom"`
	System systemFile        `yaml:"system"`
}

type systemFile struct {
	Created       time.Time `yaml:"created"`
	Expires       time.Time `yaml:"expires,omitempty"`
	ContentLength int64     `yaml:"content_length"`
}

// LoadItem reads the item file at path.
func LoadItem(path string) (*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	var file itemFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, Error.New("invalid item file %q: %v", path, err)
	}

	return &Item{
		Custom: metadata.NewCustomFromMap(file.Custom),
		System: metadata.System{
			Created:       file.System.Created,
			Expires:       file.System.Expires,
			ContentLength: file.System.ContentLength,
		},
	}, nil
}

// SaveItem writes item to the item file at path.
func SaveItem(path string, item *Item) error {
	data, err := yaml.Marshal(itemFile{
		Custom: item.Custom.Map(),
		System: systemFile{
			Created:       item.System.Created,
			Expires:       item.System.Expires,
			ContentLength: item.System.ContentLength,
		},
	})
	if err != nil {
		return Error.Wrap(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return Error.Wrap(err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	_, err = tmp.Write(data)
	if err := errs.Combine(err, tmp.Close()); err != nil {
		return Error.Wrap(err)
	}

	return Error.Wrap(os.Rename(tmp.Name(), path))
}
