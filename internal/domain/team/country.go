package team

import "fmt"

// Country is one of the ten federations taking part in the tournament.
type Country string

const (
	CountryArgentina Country = "Argentina"
	CountryBolivia   Country = "Bolivia"
	CountryBrazil    Country = "Brasil"
	CountryChile     Country = "Chile"
	CountryColombia  Country = "Colombia"
	CountryEcuador   Country = "Ecuador"
	CountryParaguay  Country = "Paraguay"
	CountryPeru      Country = "Perú"
	CountryUruguay   Country = "Uruguay"
	CountryVenezuela Country = "Venezuela"
)

var countries = []Country{
	CountryArgentina,
	CountryBolivia,
	CountryBrazil,
	CountryChile,
	CountryColombia,
	CountryEcuador,
	CountryParaguay,
	CountryPeru,
	CountryUruguay,
	CountryVenezuela,
}

var countriesByKey = func() map[string]Country {
	out := make(map[string]Country, len(countries))
	for _, c := range countries {
		out[NormalizeName(string(c))] = c
	}
	return out
}()

func Countries() []Country {
	return append([]Country(nil), countries...)
}

func (c Country) Valid() bool {
	known, ok := countriesByKey[NormalizeName(string(c))]
	return ok && known == c
}

// ParseCountry accepts any casing or accent variant ("peru", "PERÚ").
func ParseCountry(raw string) (Country, error) {
	c, ok := countriesByKey[NormalizeName(raw)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountry, raw)
	}
	return c, nil
}
