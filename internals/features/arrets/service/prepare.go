package service

import (
	"suiviarrets_backend/internals/constants"
	"suiviarrets_backend/internals/features/arrets/dto"
	"suiviarrets_backend/internals/features/arrets/model"
	helper "suiviarrets_backend/internals/helpers"
)

// BuildArret enriches validated form input with every derived field: durée,
// semaine, mois, année and the impact snapshot taken against the factor in
// force right now. Callers run ValidateArret first.
func BuildArret(in dto.ArretRequest, facteur *float64) (model.ArretModel, error) {
	d, err := helper.ParseDate(in.Date)
	if err != nil {
		return model.ArretModel{}, err
	}
	debut, err := helper.ParseClock(in.HeureDebut)
	if err != nil {
		return model.ArretModel{}, err
	}
	fin, err := helper.ParseClock(in.HeureFin)
	if err != nil {
		return model.ArretModel{}, err
	}

	nbrEquipes := 1
	if in.NbrEquipes != nil {
		nbrEquipes = *in.NbrEquipes
	}
	statut := in.Statut
	if statut == "" {
		statut = constants.StatutOuvert
	}

	duree := CalculateDuration(debut, fin)

	return model.ArretModel{
		Site:         in.Site,
		Batiment:     in.Batiment,
		Date:         d.Format(constants.DateFormat),
		Semaine:      ISOWeekString(d),
		Mois:         MonthString(d),
		Annee:        d.Year(),
		HeureDebut:   helper.FormatClock(debut),
		HeureFin:     helper.FormatClock(fin),
		DureeHeures:  duree,
		Client:       in.Client,
		NbrEquipes:   nbrEquipes,
		ImpactPct:    CalculateImpact(duree, facteur),
		Processus:    in.Processus,
		PosteMachine: in.PosteMachine,
		SousFamille:  in.SousFamille,
		Service:      in.Service,
		Description:  in.Description,
		Reference:    in.Reference,
		Demandeur:    in.Demandeur,
		Equipe:       in.Equipe,
		TraitePar:    in.TraitePar,
		Statut:       statut,
	}, nil
}
