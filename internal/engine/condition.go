package engine

import "github.com/omarshaarawi/pennantbot/internal/models"

const conditionResampleChance = 0.2

var conditionTable = []Weighted[models.Condition]{
	{0.1, models.ConditionTerrible},
	{0.2, models.ConditionBad},
	{0.4, models.ConditionNormal},
	{0.2, models.ConditionGood},
	{0.1, models.ConditionExcellent},
}

func RandomCondition(src Source) models.Condition {
	return Pick(src, conditionTable)
}

// NextCondition keeps the current condition unless the pre-match resample fires.
func NextCondition(src Source, current models.Condition) models.Condition {
	if chance(src, conditionResampleChance) {
		return RandomCondition(src)
	}
	return current
}
