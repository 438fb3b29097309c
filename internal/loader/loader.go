// Package loader reads the dictionary and reference files a Resolver is
// built from. Apart from the optional YAML file read by internal/config,
// it is the only part of this module that touches the filesystem; the
// core gazetteer package consumes plain Go values and never knows where
// they came from.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/vnaddress/resolver/internal/gazetteer"
)

// LoadNames reads one administrative name per non-empty line from path.
// Leading and trailing whitespace is trimmed; empty lines are skipped.
// A name may or may not carry its administrative prefix ("Hà Nội" or
// "Thành phố Hà Nội" are both acceptable); the gazetteer normalizes
// either form.
func LoadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return names, nil
}

// LoadReferenceRecords reads ward/district/province triples from path,
// one record per line, three comma-separated fields in that order.
// Lines that do not split into exactly three fields are silently
// dropped rather than treated as a fatal error; the file as a whole is
// considered malformed only if it cannot be opened or read at all.
func LoadReferenceRecords(path string) ([]gazetteer.ReferenceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	var records []gazetteer.ReferenceRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			continue
		}
		records = append(records, gazetteer.ReferenceRecord{
			Ward:     strings.TrimSpace(fields[0]),
			District: strings.TrimSpace(fields[1]),
			Province: strings.TrimSpace(fields[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return records, nil
}
