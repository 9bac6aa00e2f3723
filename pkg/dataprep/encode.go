package dataprep

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/NeilNjae/pci/pkg/data"
)

// Encoder turns one raw row into a numeric record.
type Encoder func(data.RawRecord) (data.Record, error)

// TagSeparator splits an interest list such as "skiing:knitting:dancing".
const TagSeparator = ":"

// Positions of the raw matchmaker fields.
const (
	fieldAge = iota
	fieldSmoker
	fieldWantsChildren
	fieldInterests
	fieldAddress
	fieldOtherAge
	fieldOtherSmoker
	fieldOtherWantsChildren
	fieldOtherInterests
	profileFields
)

// FeatureNames lists the columns produced by EncodeMatch, in order.
var FeatureNames = []string{
	"age",
	"smoker",
	"wants_children",
	"other_age",
	"other_smoker",
	"other_wants_children",
	"shared_interests",
}

// YesNo encodes "yes" as 1, "no" as -1 and anything else as 0.
func YesNo(v string) float64 {
	switch v {
	case "yes":
		return 1
	case "no":
		return -1
	}
	return 0
}

// Tags splits a tag list into its distinct, non-empty tags.
func Tags(list string) []string {
	return lo.Uniq(lo.Compact(strings.Split(list, TagSeparator)))
}

// TagOverlap counts the tags two lists have in common.
func TagOverlap(a, b string) int {
	other := Tags(b)
	return lo.CountBy(Tags(a), func(tag string) bool { return lo.Contains(other, tag) })
}

// Profile is one matchmaker row with its fields named.
type Profile struct {
	Age                float64
	Smoker             string
	WantsChildren      string
	Interests          string
	Address            string
	OtherAge           float64
	OtherSmoker        string
	OtherWantsChildren string
	OtherInterests     string
}

// ParseProfile names the nine fields of a matchmaker row.
func ParseProfile(raw data.RawRecord) (Profile, error) {
	f := raw.Fields
	if len(f) != profileFields {
		return Profile{}, errors.Wrapf(data.ErrMalformedInput, "got %d fields, want %d", len(f), profileFields)
	}
	ages, err := data.ParseFloats([]string{f[fieldAge], f[fieldOtherAge]})
	if err != nil {
		return Profile{}, errors.WithMessage(err, "ages")
	}
	return Profile{
		Age:                ages[0],
		Smoker:             f[fieldSmoker],
		WantsChildren:      f[fieldWantsChildren],
		Interests:          f[fieldInterests],
		Address:            f[fieldAddress],
		OtherAge:           ages[1],
		OtherSmoker:        f[fieldOtherSmoker],
		OtherWantsChildren: f[fieldOtherWantsChildren],
		OtherInterests:     f[fieldOtherInterests],
	}, nil
}

// Vector lays the profile out in FeatureNames order.
// The address is not encoded.
func (p Profile) Vector() []float64 {
	return []float64{
		p.Age,
		YesNo(p.Smoker),
		YesNo(p.WantsChildren),
		p.OtherAge,
		YesNo(p.OtherSmoker),
		YesNo(p.OtherWantsChildren),
		float64(TagOverlap(p.Interests, p.OtherInterests)),
	}
}

// EncodeMatch converts a matchmaker row into a 7 feature record, keeping its class.
func EncodeMatch(raw data.RawRecord) (data.Record, error) {
	p, err := ParseProfile(raw)
	if err != nil {
		return data.Record{}, err
	}
	return data.Record{Data: p.Vector(), Class: raw.Class}, nil
}

// EncodeNumeric parses every field of the row as a number.
func EncodeNumeric(raw data.RawRecord) (data.Record, error) {
	x, err := data.ParseFloats(raw.Fields)
	if err != nil {
		return data.Record{}, err
	}
	return data.Record{Data: x, Class: raw.Class}, nil
}

// EncodeAll applies enc to every row.
func EncodeAll(rows []data.RawRecord, enc Encoder) ([]data.Record, error) {
	out := make([]data.Record, len(rows))
	for i, row := range rows {
		r, err := enc(row)
		if err != nil {
			return nil, errors.WithMessagef(err, "row %d", i)
		}
		out[i] = r
	}
	return out, nil
}

// EncoderFor returns the encoder registered under name: "match" or "numeric".
func EncoderFor(name string) (Encoder, error) {
	switch name {
	case "match", "":
		return EncodeMatch, nil
	case "numeric":
		return EncodeNumeric, nil
	}
	return nil, errors.Errorf("unknown encoding %q", name)
}
