package catalog

import (
	"bufio"
	"os"
	"strings"
)

// LoadDefaultsArgs reads the first line of a defaults file (spec §6,
// defaults.txt) and splits it on whitespace into CLI tokens meant to be
// prepended to os.Args[1:]. A missing file is not an error: defaults.txt
// is optional, unlike the cards/deck files.
func LoadDefaultsArgs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, scanner.Err()
	}
	return strings.Fields(scanner.Text()), scanner.Err()
}

// PrependDefaults builds the effective argv: defaults.txt tokens first,
// then the real command line. flag.Parse applies flags left to right and a
// repeated flag's last occurrence wins, so an explicit command-line flag
// always overrides its defaults.txt counterpart (spec §6).
func PrependDefaults(defaults, args []string) []string {
	out := make([]string, 0, len(defaults)+len(args))
	out = append(out, defaults...)
	out = append(out, args...)
	return out
}
