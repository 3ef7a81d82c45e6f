package domain

import "github.com/beevik/etree"

// WQX paths for the water-quality schema. The schema carries a default
// namespace, so path components are bare local names.
const (
	pathOrganization = "//Organization"
	pathOrgDesc      = "OrganizationDescription"
	pathActivities   = "Activity"
	pathResults      = "Result"

	pathActivityDesc   = "ActivityDescription"
	pathActivityStart  = "ActivityStartTime"
	pathSampleDesc     = "SampleDescription"
	pathSampleMethod   = "SampleCollectionMethod"
	pathResultDesc     = "ResultDescription"
	pathResultMeasure  = "ResultMeasure"
	pathResultMethod   = "ResultAnalyticalMethod"
	pathResultLab      = "ResultLabInformation"
	pathAnalysisStart  = "AnalysisStartTime"
	pathDetectionLimit = "ResultDetectionQuantitationLimit"
	pathLimitMeasure   = "DetectionQuantitationLimitMeasure"
)

// ExtractWaterQuality walks a water-quality document into a flat record.
// A nil document or one without an Organization node yields nil.
func ExtractWaterQuality(doc *etree.Document) *WaterQuality {
	if doc == nil {
		return nil
	}
	organization := doc.FindElement(pathOrganization)
	if organization == nil {
		return nil
	}

	orgDesc := findElement(organization, pathOrgDesc)
	record := &WaterQuality{
		Organization: Organization{
			ID:   FindText(orgDesc, "OrganizationIdentifier"),
			Name: FindText(orgDesc, "OrganizationFormalName"),
		},
		Activities: make([]Activity, 0),
	}

	for _, activity := range organization.FindElements(pathActivities) {
		record.Activities = append(record.Activities, extractActivity(activity))
	}
	return record
}

func extractActivity(activity *etree.Element) Activity {
	desc := findElement(activity, pathActivityDesc)
	sample := findElement(activity, pathSampleDesc)

	out := Activity{
		Description: ActivityDescription{
			Identifier:                   FindText(desc, "ActivityIdentifier"),
			TypeCode:                     FindText(desc, "ActivityTypeCode"),
			MediaName:                    FindText(desc, "ActivityMediaName"),
			StartDate:                    FindText(desc, "ActivityStartDate"),
			StartTime:                    extractTimeDetail(findElement(desc, pathActivityStart)),
			ProjectIdentifier:            FindText(desc, "ProjectIdentifier"),
			MonitoringLocationIdentifier: FindText(desc, "MonitoringLocationIdentifier"),
			CommentText:                  FindText(desc, "ActivityCommentText"),
		},
		SampleDescription: SampleDescription{
			CollectionMethod:        extractMethod(findElement(sample, pathSampleMethod)),
			CollectionEquipmentName: FindText(sample, "SampleCollectionEquipmentName"),
		},
		Results: make([]Result, 0),
	}

	for _, result := range activity.FindElements(pathResults) {
		out.Results = append(out.Results, extractResult(result))
	}
	return out
}

func extractResult(result *etree.Element) Result {
	desc := findElement(result, pathResultDesc)
	lab := findElement(result, pathResultLab)
	limit := findElement(lab, pathDetectionLimit)

	return Result{
		Pcode:        FindText(result, "USGSPcode"),
		ProviderName: FindText(result, "ProviderName"),
		Description: ResultDescription{
			DetectionConditionText: FindText(desc, "ResultDetectionConditionText"),
			CharacteristicName:     FindText(desc, "CharacteristicName"),
			SampleFractionText:     FindText(desc, "ResultSampleFractionText"),
			Measure: Measure{
				Value:    FindText(findElement(desc, pathResultMeasure), "ResultMeasureValue"),
				UnitCode: FindText(findElement(desc, pathResultMeasure), "MeasureUnitCode"),
			},
			ValueTypeName:        FindText(desc, "ResultValueTypeName"),
			TemperatureBasisText: FindText(desc, "ResultTemperatureBasisText"),
			CommentText:          FindText(desc, "ResultCommentText"),
		},
		AnalyticalMethod: extractMethod(findElement(result, pathResultMethod)),
		LabInformation: LabInformation{
			AnalysisStartDate: FindText(lab, "AnalysisStartDate"),
			AnalysisStartTime: extractTimeDetail(findElement(lab, pathAnalysisStart)),
			DetectionQuantitationLimit: DetectionLimit{
				TypeName: FindText(limit, "DetectionQuantitationLimitTypeName"),
				Measure: Measure{
					Value:    FindText(findElement(limit, pathLimitMeasure), "MeasureValue"),
					UnitCode: FindText(findElement(limit, pathLimitMeasure), "MeasureUnitCode"),
				},
			},
		},
	}
}

func extractMethod(method *etree.Element) Method {
	return Method{
		Identifier:        FindText(method, "MethodIdentifier"),
		IdentifierContext: FindText(method, "MethodIdentifierContext"),
		Name:              FindText(method, "MethodName"),
	}
}

func extractTimeDetail(node *etree.Element) TimeDetail {
	return TimeDetail{
		Time:         FindText(node, "Time"),
		TimeZoneCode: FindText(node, "TimeZoneCode"),
	}
}
