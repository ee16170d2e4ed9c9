// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/tfctl/awsops/internal/output"
	"github.com/tfctl/awsops/internal/terraform"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	if _, err := output.ParseFormat(s); err != nil {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// RootDirValidator accepts a "dir[::workspace]" spec naming an existing
// directory, or an empty value.
func RootDirValidator(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, _, err := terraform.ParseRootDir(s)
	return err
}
