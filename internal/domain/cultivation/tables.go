package cultivation

// StageOrder is the ordered stage list shared by every realm. StagePeak is
// absorbing while realm breakthroughs stay disabled.
var StageOrder = []Stage{StageInitial, StageEarly, StageMiddle, StageLate, StagePeak}

// RealmOrder lists realms from weakest to strongest. Index order drives the
// required-experience base.
var RealmOrder = []Realm{
	RealmQiCondensation,
	RealmFoundationEstablishment,
	RealmCoreFormation,
	RealmNascentSoul,
	RealmSoulTransformation,
	RealmVoidRefinement,
	RealmBodyIntegration,
	RealmGreatAscension,
}

// RealmTuning holds the per-realm progression data. BaseExp scales stage
// thresholds; LifespanYears bounds a cultivator's in-game lifetime.
type RealmTuning struct {
	BaseExp       float64
	LifespanYears float64
}

// ProgressionTable is the data-driven stage threshold and lifespan table.
// Later realms are present but unreachable while breakthroughs are disabled.
type ProgressionTable struct {
	Realms map[Realm]RealmTuning
}

// DefaultProgression returns the stock tuning: required experience is
// (realm index + 1) * 100 scaled by (stage index + 1).
func DefaultProgression() ProgressionTable {
	realms := make(map[Realm]RealmTuning, len(RealmOrder))
	lifespans := []float64{120, 240, 500, 1000, 2000, 5000, 10000, 20000}
	for i, realm := range RealmOrder {
		realms[realm] = RealmTuning{
			BaseExp:       float64(i+1) * 100,
			LifespanYears: lifespans[i],
		}
	}
	return ProgressionTable{Realms: realms}
}

func stageIndex(stage Stage) int {
	for i, s := range StageOrder {
		if s == stage {
			return i
		}
	}
	return 0
}

// FinalStage reports whether stage is the last entry of the stage order.
func FinalStage(stage Stage) bool {
	return stageIndex(stage) == len(StageOrder)-1
}

// RequiredExp returns the experience threshold for advancing out of the
// given stage of the given realm.
func (t ProgressionTable) RequiredExp(realm Realm, stage Stage) float64 {
	tuning, ok := t.Realms[realm]
	if !ok {
		tuning = RealmTuning{BaseExp: 100, LifespanYears: 120}
	}
	return tuning.BaseExp * float64(stageIndex(stage)+1)
}

// LifespanYears returns the in-game lifespan granted by a realm.
func (t ProgressionTable) LifespanYears(realm Realm) float64 {
	tuning, ok := t.Realms[realm]
	if !ok {
		return 120
	}
	return tuning.LifespanYears
}
