package constants

// Closed value sets the entry forms and validators consult.
// These mirror the reference tables seeded at first run; the text columns in
// arrets are not FK-constrained, so these lists are the authoritative enums.

var Sites = []string{"Berrechid", "Temara"}

var BatimentsParSite = map[string][]string{
	"Berrechid": {"Bât A", "Bât B"},
	"Temara":    {"TEM"},
}

var Services = []string{
	"Maintenance",
	"Technique",
	"Supply",
	"IT",
	"Production",
	"Formation",
	"Organisation",
	"Achat",
	"Qualité",
	"Visite",
}

// Equipes are shift labels, distinct from NbrEquipesOptions (matrix key).
var Equipes = []string{"Matin", "APM", "Nuit", "Normale"}

var NbrEquipesOptions = []int{1, 2, 3}

var Processus = []string{
	"CMS",
	"Traversant",
	"Insertion",
	"Test",
	"Intégration",
	"Fermeture ultrason",
	"Sertissage grosse section",
	"Autre",
}

const (
	StatutOuvert  = "Ouvert"
	StatutEnCours = "En cours"
	StatutResolu  = "Résolu"
)

var Statuts = []string{StatutOuvert, StatutEnCours, StatutResolu}

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

func IsValidSite(site string) bool {
	return contains(Sites, site)
}

func IsValidService(service string) bool {
	return contains(Services, service)
}

func IsValidStatut(statut string) bool {
	return contains(Statuts, statut)
}

func IsValidProcessus(processus string) bool {
	return contains(Processus, processus)
}

// IsValidBatiment checks the cross-field rule: the building must belong to
// the building list configured for the given site.
func IsValidBatiment(site, batiment string) bool {
	return contains(BatimentsParSite[site], batiment)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
