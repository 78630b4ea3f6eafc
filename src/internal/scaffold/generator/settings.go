// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// DefaultRuntimePackage is the package generated code imports its basic
// types, error types and DynamoDB configuration from.
const DefaultRuntimePackage = "@ddd-components/runtime"

// DefaultParentFolder is the folder holding one sub folder per bounded context.
const DefaultParentFolder = "packages/domainlogic"

// Settings are the process-wide values every generator reads at call time.
type Settings struct {
	BasicTypesFrom              string `json:"basicTypesFrom" yaml:"basicTypesFrom" envconfig:"BASIC_TYPES_FROM" validate:"required"`
	BasicErrorTypesFrom         string `json:"basicErrorTypesFrom" yaml:"basicErrorTypesFrom" envconfig:"BASIC_ERROR_TYPES_FROM" validate:"required"`
	BoundedContextsParentFolder string `json:"boundedContextsParentFolder" yaml:"boundedContextsParentFolder" envconfig:"BOUNDED_CONTEXTS_PARENT_FOLDER" validate:"required"`
	DynamoDBConfigurationFrom   string `json:"dynamoDBConfigurationFrom" yaml:"dynamoDBConfigurationFrom" envconfig:"DYNAMODB_CONFIG_FROM" validate:"required"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		BasicTypesFrom:              DefaultRuntimePackage,
		BasicErrorTypesFrom:         DefaultRuntimePackage,
		BoundedContextsParentFolder: DefaultParentFolder,
		DynamoDBConfigurationFrom:   DefaultRuntimePackage,
	}
}

// WithDefaults fills empty fields from [DefaultSettings].
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.BasicTypesFrom == "" {
		s.BasicTypesFrom = d.BasicTypesFrom
	}
	if s.BasicErrorTypesFrom == "" {
		s.BasicErrorTypesFrom = d.BasicErrorTypesFrom
	}
	if s.BoundedContextsParentFolder == "" {
		s.BoundedContextsParentFolder = d.BoundedContextsParentFolder
	}
	if s.DynamoDBConfigurationFrom == "" {
		s.DynamoDBConfigurationFrom = d.DynamoDBConfigurationFrom
	}
	return s
}

// FromEnv returns a copy of s overridden by any of BASIC_TYPES_FROM,
// BASIC_ERROR_TYPES_FROM, BOUNDED_CONTEXTS_PARENT_FOLDER and
// DYNAMODB_CONFIG_FROM that are set. Unset variables leave s unchanged.
func (s Settings) FromEnv() (Settings, error) {
	if err := envconfig.Process("", &s); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings from environment: %w", err)
	}
	return s, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports empty settings.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
