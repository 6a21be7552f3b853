package localization

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/restyle/internal/validation"
	restyleerrors "github.com/alexisbeaulieu97/restyle/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// StringsFile is the on-disk layout of one language's string tables.
//
//	language: fr
//	tables:
//	  Localizable:
//	    items_left: "%@ articles, %d restants"
type StringsFile struct {
	Language string                       `yaml:"language" validate:"required,bcp47"`
	Tables   map[string]map[string]string `yaml:"tables" validate:"required,min=1,dive,keys,required,endkeys,required"`
}

// LoadCatalog reads every strings file into a new catalog using fallback as
// the default language.
func LoadCatalog(fallback language.Tag, paths ...string) (*Catalog, error) {
	catalog := NewCatalog(fallback)
	for _, path := range paths {
		file, err := ParseStringsFile(path)
		if err != nil {
			return nil, err
		}
		catalog.AddFile(file)
	}
	return catalog, nil
}

// AddFile merges every table of a validated strings file.
func (c *Catalog) AddFile(file *StringsFile) {
	tag := language.MustParse(file.Language)
	for table, entries := range file.Tables {
		c.Add(tag, table, entries)
	}
}

// ParseStringsFile decodes and validates a single strings file.
func ParseStringsFile(path string) (*StringsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, restyleerrors.NewParseError(path, 0, err)
	}
	return ParseStrings(path, data)
}

// ParseStrings decodes and validates strings file content. name is used in
// errors only.
func ParseStrings(name string, data []byte) (*StringsFile, error) {
	var file StringsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, restyleerrors.NewParseError(name, extractLine(err), err)
	}

	if err := validation.Struct("strings", file); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &file, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
