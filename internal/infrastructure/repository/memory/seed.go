package memory

import (
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

// SeedTeams is the local development roster used when the memory store is
// started with seeding enabled.
func SeedTeams() []team.Team {
	return []team.Team{
		{Name: "River Plate", Country: team.CountryArgentina, Group: "A"},
		{Name: "Bolívar", Country: team.CountryBolivia, Group: "A"},
		{Name: "Flamengo", Country: team.CountryBrazil, Group: "A"},
		{Name: "Colo-Colo", Country: team.CountryChile, Group: "A"},
		{Name: "Atlético Nacional", Country: team.CountryColombia, Group: "B"},
		{Name: "Millonarios", Country: team.CountryColombia, Group: "B"},
		{Name: "Barcelona SC", Country: team.CountryEcuador, Group: "B"},
		{Name: "Olimpia", Country: team.CountryParaguay, Group: "B"},
		{Name: "Alianza Lima", Country: team.CountryPeru, Group: "C"},
		{Name: "Peñarol", Country: team.CountryUruguay, Group: "C"},
		{Name: "Caracas FC", Country: team.CountryVenezuela, Group: "C"},
	}
}
