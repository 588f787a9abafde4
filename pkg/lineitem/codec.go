package lineitem

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedItem is returned by Decode when the input does not carry the
// "Item: " lead segment and therefore cannot be an encoded line item.
var ErrMalformedItem = errors.New("lineitem: malformed item string")

// Item holds the attributes of one purchased article. All fields are kept as
// strings: the encoding carries no numeric guarantees and rounding is applied
// only to visit-level paid/due totals, never per item.
type Item struct {
	Name           string
	GrossWeight    string
	WastagePercent string
	NetWeight      string
	GoldRate       string
	LabRate        string
	Amount         string
}

// separator joins the key-prefixed segments of an encoded item.
const separator = " | "

// Segment prefixes of the encoding. Decode matches these in any order.
const (
	prefixName     = "Item: "
	prefixGross    = "Gross: "
	prefixWastage  = "Wastage: "
	prefixNet      = "Net: "
	prefixGoldRate = "Gold Rate: Rs."
	prefixLabRate  = "Lab Rate: Rs."
	prefixAmount   = "Amount: Rs."
)

// Encode serializes an item into its pipe-delimited text form:
//
//	Item: <name> | Gross: <g>g | Wastage: <w>% | Net: <n>g | Gold Rate: Rs.<r> | Lab Rate: Rs.<l> | Amount: Rs.<a>
func Encode(it Item) string {
	return fmt.Sprintf("Item: %s | Gross: %sg | Wastage: %s%% | Net: %sg | Gold Rate: Rs.%s | Lab Rate: Rs.%s | Amount: Rs.%s",
		it.Name, it.GrossWeight, it.WastagePercent, it.NetWeight, it.GoldRate, it.LabRate, it.Amount)
}

// Decode parses an encoded item string back into an Item.
//
// The string must start with "Item: " after trimming; otherwise
// ErrMalformedItem is returned. Beyond that the decoder is deliberately
// lenient for compatibility with previously stored blobs: segments may appear
// in any order, absent segments leave their field as the empty string, and
// segments with an unrecognized prefix are silently ignored. Unit suffixes
// ("g" on weights, "%" on wastage) are stripped from the values.
//
// Known limitation: field values containing the " | " separator or a newline
// are not escaped and will not round-trip.
func Decode(s string) (Item, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, prefixName) {
		return Item{}, ErrMalformedItem
	}

	var it Item
	for _, segment := range strings.Split(trimmed, separator) {
		switch {
		case strings.HasPrefix(segment, prefixName):
			it.Name = strings.TrimSpace(strings.TrimPrefix(segment, prefixName))
		case strings.HasPrefix(segment, prefixGross):
			it.GrossWeight = trimUnit(strings.TrimPrefix(segment, prefixGross), "g")
		case strings.HasPrefix(segment, prefixWastage):
			it.WastagePercent = trimUnit(strings.TrimPrefix(segment, prefixWastage), "%")
		case strings.HasPrefix(segment, prefixNet):
			it.NetWeight = trimUnit(strings.TrimPrefix(segment, prefixNet), "g")
		case strings.HasPrefix(segment, prefixGoldRate):
			it.GoldRate = strings.TrimSpace(strings.TrimPrefix(segment, prefixGoldRate))
		case strings.HasPrefix(segment, prefixLabRate):
			it.LabRate = strings.TrimSpace(strings.TrimPrefix(segment, prefixLabRate))
		case strings.HasPrefix(segment, prefixAmount):
			it.Amount = strings.TrimSpace(strings.TrimPrefix(segment, prefixAmount))
		}
	}
	return it, nil
}

func trimUnit(v, unit string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), unit))
}
