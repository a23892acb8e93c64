package util

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ParseSizeStringAsByte parses a byte-size string such as "128", "4K",
// "1.5M" or "2G" into a byte count.
func ParseSizeStringAsByte(size string) (uint64, error) {
	re := regexp.MustCompile(`^([0-9]+(\.?[0-9]*))([MmGgKkB]?)$`)
	result := re.FindAllStringSubmatch(size, -1)
	if result == nil || len(result) != 1 {
		return 0, fmt.Errorf("invalid size format")
	}
	sz, err := ParseFloatWithPrecision(result[0][1], 10)
	if err != nil {
		return 0, err
	}
	switch result[0][len(result[0])-1] {
	case "M", "m":
		return uint64(1024 * 1024 * sz), nil
	case "G", "g":
		return uint64(1024 * 1024 * 1024 * sz), nil
	case "K", "k":
		return uint64(1024 * sz), nil
	}
	// default unit is bytes
	return uint64(sz), nil
}

func ParseFloatWithPrecision(val string, decimalPlaces int) (float64, error) {
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}

	shift := math.Pow(10, float64(decimalPlaces))
	return math.Floor(num*shift) / shift, nil
}
