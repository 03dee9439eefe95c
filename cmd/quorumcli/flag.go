package main

import (
	"flag"
	"strconv"

	"github.com/iov-one/quorum"
)

// flWeight registers an optional weight flag. Unlike a plain integer flag it
// can tell a flag that was not provided from one set to zero, which matters
// for setOptions where an absent field means no change. This function
// follows Go's flag package convention.
func flWeight(fl *flag.FlagSet, name, usage string) *flagWeight {
	var fw flagWeight
	fl.Var(&fw, name, usage)
	return &fw
}

type flagWeight struct {
	w *quorum.Weight
}

func (fw *flagWeight) String() string {
	if fw == nil || fw.w == nil {
		return ""
	}
	return strconv.FormatInt(int64(*fw.w), 10)
}

func (fw *flagWeight) Set(raw string) error {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return err
	}
	w := quorum.Weight(v)
	if err := w.Validate(); err != nil {
		return err
	}
	fw.w = &w
	return nil
}

// Weight returns the parsed weight or nil if the flag was not provided.
func (fw *flagWeight) Weight() *quorum.Weight {
	return fw.w
}
