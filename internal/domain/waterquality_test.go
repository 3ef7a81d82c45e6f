package domain

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waterQualityFixture = `<WQX>
  <Organization>
    <OrganizationDescription>
      <OrganizationIdentifier>USGS-MI</OrganizationIdentifier>
      <OrganizationFormalName>USGS Michigan Water Science Center</OrganizationFormalName>
    </OrganizationDescription>
    <Activity>
      <ActivityDescription>
        <ActivityIdentifier>nwismi.01.98000888</ActivityIdentifier>
        <ActivityTypeCode>Sample-Routine</ActivityTypeCode>
        <ActivityMediaName>Water</ActivityMediaName>
        <ActivityStartDate>1980-07-24</ActivityStartDate>
        <ActivityStartTime>
          <Time>14:15:00</Time>
          <TimeZoneCode>EDT</TimeZoneCode>
        </ActivityStartTime>
        <ProjectIdentifier>Unknown</ProjectIdentifier>
        <MonitoringLocationIdentifier>USGS-462421087242701</MonitoringLocationIdentifier>
        <ActivityCommentText></ActivityCommentText>
      </ActivityDescription>
      <SampleDescription>
        <SampleCollectionMethod>
          <MethodIdentifier>USGS</MethodIdentifier>
          <MethodIdentifierContext>USGS</MethodIdentifierContext>
          <MethodName>USGS</MethodName>
        </SampleCollectionMethod>
        <SampleCollectionEquipmentName>Unknown</SampleCollectionEquipmentName>
      </SampleDescription>
      <Result>
        <ResultDescription>
          <ResultDetectionConditionText>Not Detected</ResultDetectionConditionText>
          <CharacteristicName>Nickel</CharacteristicName>
          <ResultSampleFractionText>Recoverable</ResultSampleFractionText>
          <ResultMeasure>
            <ResultMeasureValue>0</ResultMeasureValue>
            <MeasureUnitCode>ug/l</MeasureUnitCode>
          </ResultMeasure>
          <ResultValueTypeName>Actual</ResultValueTypeName>
          <ResultTemperatureBasisText></ResultTemperatureBasisText>
          <ResultCommentText>Historical data</ResultCommentText>
        </ResultDescription>
        <ResultAnalyticalMethod>
          <MethodIdentifier>ICP011</MethodIdentifier>
          <MethodIdentifierContext>USGS</MethodIdentifierContext>
          <MethodName>ICP, atomic emission</MethodName>
        </ResultAnalyticalMethod>
        <ResultLabInformation>
          <AnalysisStartDate>1980-08-01</AnalysisStartDate>
          <AnalysisStartTime>
            <Time>00:00:00</Time>
            <TimeZoneCode>EDT</TimeZoneCode>
          </AnalysisStartTime>
          <ResultDetectionQuantitationLimit>
            <DetectionQuantitationLimitTypeName>Historical Lower Reporting Limit</DetectionQuantitationLimitTypeName>
            <DetectionQuantitationLimitMeasure>
              <MeasureValue>10</MeasureValue>
              <MeasureUnitCode>ug/l</MeasureUnitCode>
            </DetectionQuantitationLimitMeasure>
          </ResultDetectionQuantitationLimit>
        </ResultLabInformation>
        <USGSPcode>01065</USGSPcode>
        <ProviderName>NWIS</ProviderName>
      </Result>
      <Result>
        <ResultDescription>
          <CharacteristicName>pH</CharacteristicName>
          <ResultMeasure>
            <ResultMeasureValue>7.6</ResultMeasureValue>
            <MeasureUnitCode>std units</MeasureUnitCode>
          </ResultMeasure>
        </ResultDescription>
      </Result>
    </Activity>
  </Organization>
</WQX>`

func TestExtractWaterQuality(t *testing.T) {
	record := ExtractWaterQuality(parseDoc(t, waterQualityFixture))
	require.NotNil(t, record)

	t.Run("organization", func(t *testing.T) {
		require.NotNil(t, record.Organization.ID)
		assert.Equal(t, "USGS-MI", *record.Organization.ID)
		require.NotNil(t, record.Organization.Name)
		assert.Equal(t, "USGS Michigan Water Science Center", *record.Organization.Name)
	})

	require.Len(t, record.Activities, 1)
	activity := record.Activities[0]

	t.Run("activity description", func(t *testing.T) {
		desc := activity.Description
		require.NotNil(t, desc.Identifier)
		assert.Equal(t, "nwismi.01.98000888", *desc.Identifier)
		require.NotNil(t, desc.TypeCode)
		assert.Equal(t, "Sample-Routine", *desc.TypeCode)
		require.NotNil(t, desc.StartDate)
		assert.Equal(t, "1980-07-24", *desc.StartDate)
		require.NotNil(t, desc.StartTime.Time)
		assert.Equal(t, "14:15:00", *desc.StartTime.Time)
		require.NotNil(t, desc.StartTime.TimeZoneCode)
		assert.Equal(t, "EDT", *desc.StartTime.TimeZoneCode)
		// Capitalized Unknown is a real value in element text.
		require.NotNil(t, desc.ProjectIdentifier)
		assert.Equal(t, "Unknown", *desc.ProjectIdentifier)
		assert.Nil(t, desc.CommentText)
	})

	t.Run("sample description", func(t *testing.T) {
		sample := activity.SampleDescription
		require.NotNil(t, sample.CollectionMethod.Identifier)
		assert.Equal(t, "USGS", *sample.CollectionMethod.Identifier)
		require.NotNil(t, sample.CollectionEquipmentName)
		assert.Equal(t, "Unknown", *sample.CollectionEquipmentName)
	})

	require.Len(t, activity.Results, 2)

	t.Run("full result", func(t *testing.T) {
		result := activity.Results[0]
		require.NotNil(t, result.Pcode)
		assert.Equal(t, "01065", *result.Pcode)
		require.NotNil(t, result.ProviderName)
		assert.Equal(t, "NWIS", *result.ProviderName)
		require.NotNil(t, result.Description.DetectionConditionText)
		assert.Equal(t, "Not Detected", *result.Description.DetectionConditionText)
		require.NotNil(t, result.Description.CharacteristicName)
		assert.Equal(t, "Nickel", *result.Description.CharacteristicName)
		require.NotNil(t, result.Description.Measure.Value)
		assert.Equal(t, "0", *result.Description.Measure.Value)
		require.NotNil(t, result.Description.Measure.UnitCode)
		assert.Equal(t, "ug/l", *result.Description.Measure.UnitCode)
		assert.Nil(t, result.Description.TemperatureBasisText)

		require.NotNil(t, result.AnalyticalMethod.Name)
		assert.Equal(t, "ICP, atomic emission", *result.AnalyticalMethod.Name)

		lab := result.LabInformation
		require.NotNil(t, lab.AnalysisStartDate)
		assert.Equal(t, "1980-08-01", *lab.AnalysisStartDate)
		require.NotNil(t, lab.DetectionQuantitationLimit.TypeName)
		assert.Equal(t, "Historical Lower Reporting Limit", *lab.DetectionQuantitationLimit.TypeName)
		require.NotNil(t, lab.DetectionQuantitationLimit.Measure.Value)
		assert.Equal(t, "10", *lab.DetectionQuantitationLimit.Measure.Value)
	})

	t.Run("sparse result", func(t *testing.T) {
		result := activity.Results[1]
		assert.Nil(t, result.Pcode)
		require.NotNil(t, result.Description.CharacteristicName)
		assert.Equal(t, "pH", *result.Description.CharacteristicName)
		require.NotNil(t, result.Description.Measure.Value)
		assert.Equal(t, "7.6", *result.Description.Measure.Value)
		assert.Nil(t, result.AnalyticalMethod.Identifier)
		assert.Nil(t, result.LabInformation.AnalysisStartDate)
	})
}

func TestExtractWaterQuality_NoActivities(t *testing.T) {
	record := ExtractWaterQuality(parseDoc(t, `<WQX>
		<Organization>
			<OrganizationDescription>
				<OrganizationIdentifier>MBMG</OrganizationIdentifier>
			</OrganizationDescription>
		</Organization>
	</WQX>`))
	require.NotNil(t, record)

	assert.Equal(t, "MBMG", *record.Organization.ID)
	assert.Nil(t, record.Organization.Name)
	assert.NotNil(t, record.Activities)
	assert.Empty(t, record.Activities)
}

func TestExtractWaterQuality_NoRecord(t *testing.T) {
	t.Run("nil document", func(t *testing.T) {
		assert.Nil(t, ExtractWaterQuality(nil))
	})

	t.Run("document without an organization", func(t *testing.T) {
		assert.Nil(t, ExtractWaterQuality(parseDoc(t, `<WQX/>`)))
	})

	t.Run("empty document", func(t *testing.T) {
		assert.Nil(t, ExtractWaterQuality(etree.NewDocument()))
	})
}
