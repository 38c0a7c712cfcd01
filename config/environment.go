package config

import (
	"errors"
	"os"
	"reflect"

	_ "github.com/joho/godotenv/autoload"
)

// Environment is filled from process environment variables named after its
// fields. Fields tagged `env:"optional"` may be left unset; a `default` tag
// is used when the variable is empty.
type Environment struct {
	DISCORD_BOT_TOKEN string `env:"optional"`
	DB_USER           string
	DB_PASSWORD       string `env:"optional"`
	DB_HOST           string `default:"db"`
	DB_PORT           string `default:"3306"`
	DB_NAME           string
	HTTP_ADDR         string `default:":8080"`
}

var environment Environment

func initEnvironment() error {
	env, err := Load(os.Getenv)
	if err != nil {
		return err
	}
	environment = *env
	return nil
}

// Load builds an Environment from lookup, which is os.Getenv outside tests.
func Load(lookup func(string) string) (*Environment, error) {
	env := &Environment{}
	envType := reflect.TypeOf(*env)
	envValue := reflect.ValueOf(env).Elem()

	for i := 0; i < envType.NumField(); i++ {
		field := envType.Field(i)
		envVar := field.Name

		value := lookup(envVar)
		if value == "" {
			value = field.Tag.Get("default")
		}
		if value == "" && field.Tag.Get("env") != "optional" {
			return nil, errors.New("environment variable " + envVar + " is required")
		}

		envValue.FieldByName(envVar).SetString(value)
	}

	return env, nil
}

func GetEnv() *Environment {
	return &environment
}
