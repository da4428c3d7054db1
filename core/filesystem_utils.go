package core

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func GetOSUsers(fpath string) (map[string]uint32, map[uint32]string, error) {
	// alice:x:1005:1006::/home/alice:/usr/bin/bash
	return readIDDatabase(fpath, 7, 6)
}

func GetOSGroups(fpath string) (map[string]uint32, map[uint32]string, error) {
	// wheel:*:0:root
	return readIDDatabase(fpath, 4, 4)
}

// readIDDatabase parses passwd(5)/group(5) style files. The numeric ID is
// always the third field.
func readIDDatabase(fpath string, maxFields, minFields int) (map[string]uint32, map[uint32]string, error) {
	fd, err := os.Open(fpath)
	if err != nil {
		return nil, nil, err
	}
	defer fd.Close()

	names := make(map[string]uint32)
	ids := make(map[uint32]string)

	scanner := bufio.NewScanner(fd)

	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()

		if len(line) == 0 || line[0] == '#' {
			continue
		}

		parts := strings.SplitN(line, ":", maxFields)

		if len(parts) < minFields || parts[0] == "" || parts[0][0] == '+' || parts[0][0] == '-' {
			// If the file contains +foo and you search for "foo", glibc
			// returns an "invalid argument" error. Similarly, if you search
			// for an id for a row where the name starts with "+" or "-",
			// glibc fails to find the record.
			continue
		}

		id, err := strconv.ParseUint(parts[2], 10, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: invalid id: %w", fpath, n, err)
		}

		names[parts[0]] = uint32(id)

		// The first entry wins, as with getpwuid(3)
		if _, ok := ids[uint32(id)]; !ok {
			ids[uint32(id)] = parts[0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return names, ids, nil
}
