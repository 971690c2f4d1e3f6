// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rootdata

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	DefBaseURL            = "https://api.rootdata.com/open"
	DefLanguage           = "en"
	DefPageSize           = 10
	DefMaxPageSize        = 100
	DefMaxFundingPageSize = 200
)

// ErrConfig is returned when the configuration fails validation.  The
// process must not serve any tools if this error is returned.
var ErrConfig = errors.New("invalid configuration")

// Config is the upstream API configuration.  It is built once at startup
// and never modified afterwards.
type Config struct {
	// APIKey is sent in the "apikey" header of every request.
	APIKey string `toml:"-" validate:"required"`
	// BaseURL is the API root, endpoint names are appended to it.
	BaseURL string `toml:"base_url" validate:"required,http_url"`
	// Language is sent in the "language" header.
	Language string `toml:"language" validate:"required,oneof=en cn"`
	// DefaultPageSize is used when the caller does not specify page_size.
	DefaultPageSize int `toml:"default_page_size" validate:"gte=1,ltefield=MaxPageSize"`
	// MaxPageSize caps page_size for paginated listings.
	MaxPageSize int `toml:"max_page_size" validate:"gte=1,lte=200"`
	// MaxFundingPageSize caps page_size for the funding rounds listing.
	MaxFundingPageSize int `toml:"max_funding_page_size" validate:"gte=1,lte=200"`
	// Timeout is the HTTP client timeout, zero means no timeout.
	Timeout time.Duration `toml:"timeout"`
}

// DefConfig is the default configuration.  It lacks the API key.
var DefConfig = Config{
	BaseURL:            DefBaseURL,
	Language:           DefLanguage,
	DefaultPageSize:    DefPageSize,
	MaxPageSize:        DefMaxPageSize,
	MaxFundingPageSize: DefMaxFundingPageSize,
}

var (
	validate   = validator.New(validator.WithRequiredStructEnabled())
	translator ut.Translator
)

func init() {
	uni := ut.New(en.New())
	translator, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}
}

// Validate checks the configuration.  The returned error wraps ErrConfig and
// lists every problem found.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var vErr validator.ValidationErrors
	if !errors.As(err, &vErr) {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	problems := make([]string, 0, len(vErr))
	for _, fe := range vErr {
		problems = append(problems, fe.Translate(translator))
	}
	return fmt.Errorf("%w: %s", ErrConfig, strings.Join(problems, "; "))
}

// LoadConfig reads the TOML configuration file and applies it on top of
// base.  Keys that are absent in the file leave the base values intact.
// The API key is never read from the file.
func LoadConfig(filename string, base Config) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return base, err
	}
	defer f.Close()
	return DecodeConfig(f, base)
}

// DecodeConfig decodes the TOML configuration from r on top of base.
func DecodeConfig(r io.Reader, base Config) (Config, error) {
	cfg := base
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return base, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, 0, len(undec))
		for _, k := range undec {
			keys = append(keys, k.String())
		}
		return base, fmt.Errorf("%w: unknown keys: %s", ErrConfig, strings.Join(keys, ", "))
	}
	cfg.APIKey = base.APIKey
	return cfg, nil
}
