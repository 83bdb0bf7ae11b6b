/*
Copyright © 2018 the MTpy authors.
This file is part of MTpy.

MTpy is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MTpy is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MTpy.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package edi decodes the subset of the EDI magnetotelluric data
// interchange format that the penetration depth pipeline reads:
// station identifier, reference coordinate, frequency table and the
// 2×2 complex impedance tensor per frequency.
package edi

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/adamqc/mtpy"
)

// ReadDir decodes every *.edi file in dir, sorted by file name.
// It returns mtpy.ErrEmptyInput when the directory holds no EDI
// files.
func ReadDir(dir string) ([]*mtpy.Station, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.edi"))
	if err != nil {
		return nil, fmt.Errorf("edi: listing %s: %v", dir, err)
	}
	if len(files) == 0 {
		return nil, mtpy.ErrEmptyInput
	}
	sort.Strings(files)
	stations := make([]*mtpy.Station, len(files))
	for i, fname := range files {
		stations[i], err = ReadFile(fname)
		if err != nil {
			return nil, err
		}
	}
	return stations, nil
}

// ReadFile decodes one EDI file.
func ReadFile(fname string) (*mtpy.Station, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("edi: %v", err)
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("edi: decoding %s: %v", fname, err)
	}
	if s.ID == "" {
		s.ID = strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	}
	return s, nil
}

// Decode decodes EDI data from r.
func Decode(r io.Reader) (*mtpy.Station, error) {
	keys := make(map[string]string)
	blocks := make(map[string][]float64)

	var block string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			name := strings.TrimLeft(line, ">=")
			if i := strings.IndexAny(name, " \t/"); i >= 0 {
				name = name[:i]
			}
			block = strings.ToUpper(name)
			continue
		}
		switch block {
		case "HEAD", "INFO", "DEFINEMEAS", "MTSECT", "EMEAS", "HMEAS":
			for _, kv := range strings.Fields(line) {
				if i := strings.Index(kv, "="); i > 0 {
					keys[strings.ToUpper(kv[:i])] = strings.Trim(kv[i+1:], `"`)
				}
			}
		default:
			for _, tok := range strings.Fields(line) {
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return nil, fmt.Errorf("bad value %q in block %s", tok, block)
				}
				blocks[block] = append(blocks[block], v)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	freqs := blocks["FREQ"]
	if len(freqs) == 0 {
		return nil, fmt.Errorf("no FREQ block")
	}
	z := &mtpy.ImpedanceTensor{
		Freqs: freqs,
		Data:  make([][2][2]complex128, len(freqs)),
	}
	components := [2][2]string{{"ZXX", "ZXY"}, {"ZYX", "ZYY"}}
	for ri, row := range components {
		for ci, name := range row {
			re, im := blocks[name+"R"], blocks[name+"I"]
			if len(re) != len(freqs) || len(im) != len(freqs) {
				return nil, fmt.Errorf("component %s has %d real and %d imaginary values for %d frequencies",
					name, len(re), len(im), len(freqs))
			}
			for i := range freqs {
				z.Data[i][ri][ci] = complex(re[i], im[i])
			}
		}
	}

	lat, err := angle(firstKey(keys, "LAT", "REFLAT"))
	if err != nil {
		return nil, fmt.Errorf("latitude: %v", err)
	}
	lon, err := angle(firstKey(keys, "LONG", "LON", "REFLONG", "REFLON"))
	if err != nil {
		return nil, fmt.Errorf("longitude: %v", err)
	}

	return &mtpy.Station{
		ID:  keys["DATAID"],
		Lat: lat,
		Lon: lon,
		Z:   z,
	}, nil
}

func firstKey(keys map[string]string, names ...string) string {
	for _, n := range names {
		if v, ok := keys[n]; ok {
			return v
		}
	}
	return ""
}

// angle parses an angle in decimal degrees or deg:min:sec notation.
// The sign of the degrees field applies to the whole angle.
func angle(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	if !strings.Contains(s, ":") {
		return strconv.ParseFloat(s, 64)
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("bad angle %q", s)
	}
	deg, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, fmt.Errorf("bad angle %q", s)
	}
	sign := 1.0
	if strings.HasPrefix(strings.TrimSpace(parts[0]), "-") {
		sign = -1
	}
	v := deg * sign // accumulate magnitude
	scale := 60.0
	for _, p := range parts[1:] {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("bad angle %q", s)
		}
		v += f / scale
		scale *= 60
	}
	return sign * v, nil
}
