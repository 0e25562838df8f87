package repository

import (
	"fmt"
	"strconv"
	"strings"
)

const parcelIDPrefix = "PKG-"

func formatParcelID(n int) string {
	return fmt.Sprintf("%s%03d", parcelIDPrefix, n)
}

func parseParcelID(id string) (int, bool) {
	digits, ok := strings.CutPrefix(id, parcelIDPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
