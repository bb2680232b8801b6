//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// This program generates zones.go from the IANA zone.tab file, which maps
// each zone identifier to its ISO-3166 alpha-2 country code.
//
// Run with: go run gen_zones.go /usr/share/zoneinfo/zone.tab

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: go run gen_zones.go <path-to-zone.tab>")
		os.Exit(1)
	}

	in, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer in.Close()

	var sb strings.Builder

	sb.WriteString("// Code generated by gen_zones.go from the IANA zone.tab file. DO NOT EDIT.\n\n")
	sb.WriteString("package tzdataprovider\n\n")
	sb.WriteString("// zoneCountry maps one IANA zone identifier to its ISO-3166 alpha-2 country code.\n")
	sb.WriteString("type zoneCountry struct {\n\tzone    string\n\tcountry string\n}\n\n")
	sb.WriteString("// zoneCountryTable lists the zone universe in zone.tab order (sorted by\n")
	sb.WriteString("// country code, then zone).\n")
	sb.WriteString("var zoneCountryTable = []zoneCountry{\n")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}

		sb.WriteString(fmt.Sprintf("\t{zone: %q, country: %q},\n", fields[2], fields[0]))
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sb.WriteString("}\n\n")
	sb.WriteString("// extraZones are well-known zone identifiers without a country in zone.tab\n")
	sb.WriteString("// that still belong in the searchable universe.\n")
	sb.WriteString("var extraZones = []string{\n\t\"UTC\",\n}\n")

	if err := os.WriteFile("zones.go", []byte(sb.String()), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
