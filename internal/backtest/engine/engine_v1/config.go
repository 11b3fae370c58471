package engine

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

type BacktestEngineV1Config struct {
	InitialCapital   float64                    `yaml:"initial_capital" json:"initial_capital" validate:"gte=0" jsonschema:"title=Initial Capital,description=Starting cash in USD used when the algorithm does not call SetCash,minimum=0"`
	Broker           commission_fee.Broker      `yaml:"broker" json:"broker" validate:"required,oneof=interactive_broker zero_commission" jsonschema:"title=Broker,description=The broker to use for commission calculations"`
	DataResolution   types.Resolution           `yaml:"data_resolution" json:"data_resolution" validate:"required,oneof=second minute hour daily" jsonschema:"title=Data Resolution,description=Bar size of the market data files"`
	StartTime        optional.Option[time.Time] `yaml:"start_time" json:"start_time" jsonschema:"title=Start Time,description=Overrides the start date set by the algorithm"`
	EndTime          optional.Option[time.Time] `yaml:"end_time" json:"end_time" jsonschema:"title=End Time,description=Overrides the end date set by the algorithm"`
	DecimalPrecision int                        `yaml:"decimal_precision" json:"decimal_precision" validate:"gte=0,lte=8" jsonschema:"title=Decimal Precision,description=Number of decimal places allowed in order quantities,minimum=0,maximum=8"`
}

// UnmarshalYAML implements custom unmarshaling for BacktestEngineV1Config.
// Missing fields keep the values of EmptyConfig.
func (c *BacktestEngineV1Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type Config struct {
		InitialCapital   *float64               `yaml:"initial_capital"`
		Broker           *commission_fee.Broker `yaml:"broker"`
		DataResolution   *string                `yaml:"data_resolution"`
		StartTime        *time.Time             `yaml:"start_time"`
		EndTime          *time.Time             `yaml:"end_time"`
		DecimalPrecision *int                   `yaml:"decimal_precision"`
	}

	var config Config
	if err := unmarshal(&config); err != nil {
		return err
	}

	*c = EmptyConfig()

	if config.InitialCapital != nil {
		c.InitialCapital = *config.InitialCapital
	}

	if config.Broker != nil {
		c.Broker = *config.Broker
	}

	if config.DataResolution != nil {
		resolution, err := types.ParseResolution(*config.DataResolution)
		if err != nil {
			return err
		}

		c.DataResolution = resolution
	}

	if config.StartTime != nil {
		c.StartTime = optional.Some(config.StartTime.UTC())
	}

	if config.EndTime != nil {
		c.EndTime = optional.Some(config.EndTime.UTC())
	}

	if config.DecimalPrecision != nil {
		c.DecimalPrecision = *config.DecimalPrecision
	}

	return nil
}

// Validate checks the field constraints and that the time range is ordered.
func (c *BacktestEngineV1Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "invalid backtest config", err)
	}

	if c.StartTime.IsSome() && c.EndTime.IsSome() && c.EndTime.Unwrap().Before(c.StartTime.Unwrap()) {
		return errors.New(errors.ErrCodeBacktestConfigError, "invalid backtest config: end_time is before start_time")
	}

	return nil
}

// GenerateSchema generates a JSON schema for the BacktestEngineV1Config
func (c *BacktestEngineV1Config) GenerateSchema() (*jsonschema.Schema, error) {
	resolutions := make([]any, len(types.AllResolutions))
	for i, resolution := range types.AllResolutions {
		resolutions[i] = resolution
	}

	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t.String() == "optional.Option[time.Time]" {
				return &jsonschema.Schema{
					Type:   "string",
					Format: "date-time",
				}
			}

			if strings.Contains(t.String(), "commission_fee.Broker") {
				return &jsonschema.Schema{
					Type: "string",
					Enum: commission_fee.AllBrokers,
				}
			}

			if strings.Contains(t.String(), "types.Resolution") {
				return &jsonschema.Schema{
					Type: "string",
					Enum: resolutions,
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)

	schema.Title = "backtest-engine-v1-config"
	schema.Description = "Configuration schema for BacktestEngineV1"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the BacktestEngineV1Config
func (c *BacktestEngineV1Config) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}

// TestConfig returns a valid config over a fixed window.
func TestConfig(startTime time.Time, endTime time.Time, broker commission_fee.Broker) BacktestEngineV1Config {
	return BacktestEngineV1Config{
		InitialCapital:   100000,
		Broker:           broker,
		DataResolution:   types.ResolutionDaily,
		StartTime:        optional.Some(startTime),
		EndTime:          optional.Some(endTime),
		DecimalPrecision: 0,
	}
}

// EmptyConfig returns a BacktestEngineV1Config with default values.
func EmptyConfig() BacktestEngineV1Config {
	return BacktestEngineV1Config{
		InitialCapital:   100000,
		Broker:           commission_fee.BrokerInteractiveBroker,
		DataResolution:   types.ResolutionDaily,
		StartTime:        optional.None[time.Time](),
		EndTime:          optional.None[time.Time](),
		DecimalPrecision: 0,
	}
}
