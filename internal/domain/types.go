package domain

import "time"

// Coordinates is a depth interval parsed from a space-delimited pair.
type Coordinates struct {
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
}

// Location holds the positional latitude/longitude pair from the well's
// bounding envelope. Values are kept as the raw strings the service emits.
type Location struct {
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

// Elevation is the well's reference elevation with its altitude datum scheme.
type Elevation struct {
	Value  *float64 `json:"value"`
	Unit   string   `json:"unit"`
	Scheme *string  `json:"scheme"`
}

// Measurement is a numeric value with a unit of measure.
type Measurement struct {
	Value *float64 `json:"value"`
	Unit  string   `json:"unit"`
}

// Link is an online resource reference from xlink attributes.
type Link struct {
	URL   *string `json:"url"`
	Title *string `json:"title"`
}

// CodedValue is a term qualified by the code space it was drawn from.
type CodedValue struct {
	Scheme *string `json:"scheme"`
	Value  *string `json:"value"`
}

// MaterialRef names an unconsolidated material and its purpose.
type MaterialRef struct {
	Name    *string `json:"name"`
	Purpose *string `json:"purpose"`
}

// Composition describes one composition part of a hydrostratigraphic unit.
type Composition struct {
	Role       *string     `json:"role"`
	Lithology  CodedValue  `json:"lithology"`
	Material   MaterialRef `json:"material"`
	Proportion CodedValue  `json:"proportion"`
}

// UnitDescriptor carries the classifier's view of a unit description:
// canonical material and color tags in token order, duplicates preserved.
type UnitDescriptor struct {
	Colors    []string `json:"colors"`
	Materials []string `json:"materials"`
}

// LogUnit is the stratigraphic unit observed over a log interval.
type LogUnit struct {
	Description *string        `json:"description"`
	UI          UnitDescriptor `json:"ui"`
	Purpose     *string        `json:"purpose"`
	Composition Composition    `json:"composition"`
}

// Shape is the geometry of a log interval.
type Shape struct {
	Dimension   *string      `json:"dimension"`
	Unit        string       `json:"unit"`
	Coordinates *Coordinates `json:"coordinates"`
}

// LogEntry is one mapped interval of the well's stratigraphic log.
type LogEntry struct {
	Method *string `json:"method"`
	Unit   LogUnit `json:"unit"`
	Shape  Shape   `json:"shape"`
}

// Position is a construction element's placement along the borehole.
type Position struct {
	Unit        string       `json:"unit"`
	Coordinates *Coordinates `json:"coordinates"`
}

// ConstructionElement is a casing or screen segment of the well.
type ConstructionElement struct {
	Type     string      `json:"type"`
	Position Position    `json:"position"`
	Material *string     `json:"material"`
	Diameter Measurement `json:"diameter"`
}

// WellLog is the flattened well construction and lithology record.
type WellLog struct {
	Name         *string               `json:"name"`
	Location     Location              `json:"location"`
	Elevation    Elevation             `json:"elevation"`
	WellDepth    Measurement           `json:"well_depth"`
	WaterUse     *string               `json:"water_use"`
	Link         Link                  `json:"link"`
	LogEntries   []LogEntry            `json:"log_entries"`
	Construction []ConstructionElement `json:"construction"`
}

// TimeDetail is a WQX time with its zone code.
type TimeDetail struct {
	Time         *string `json:"time"`
	TimeZoneCode *string `json:"time_zone_code"`
}

// Organization identifies the agency reporting water-quality activities.
type Organization struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// ActivityDescription describes a sampling activity.
type ActivityDescription struct {
	Identifier                   *string    `json:"identifier"`
	TypeCode                     *string    `json:"type_code"`
	MediaName                    *string    `json:"media_name"`
	StartDate                    *string    `json:"start_date"`
	StartTime                    TimeDetail `json:"start_time"`
	ProjectIdentifier            *string    `json:"project_identifier"`
	MonitoringLocationIdentifier *string    `json:"monitoring_location_identifier"`
	CommentText                  *string    `json:"comment_text"`
}

// Method is a WQX method reference (collection or analytical).
type Method struct {
	Identifier        *string `json:"identifier"`
	IdentifierContext *string `json:"identifier_context"`
	Name              *string `json:"name"`
}

// SampleDescription describes how a sample was collected.
type SampleDescription struct {
	CollectionMethod        Method  `json:"collection_method"`
	CollectionEquipmentName *string `json:"collection_equipment_name"`
}

// Measure is a WQX measured value with its unit code.
type Measure struct {
	Value    *string `json:"value"`
	UnitCode *string `json:"unit_code"`
}

// ResultDescription describes a single analytical result.
type ResultDescription struct {
	DetectionConditionText *string `json:"detection_condition_text"`
	CharacteristicName     *string `json:"characteristic_name"`
	SampleFractionText     *string `json:"sample_fraction_text"`
	Measure                Measure `json:"measure"`
	ValueTypeName          *string `json:"value_type_name"`
	TemperatureBasisText   *string `json:"temperature_basis_text"`
	CommentText            *string `json:"comment_text"`
}

// DetectionLimit is a lab detection/quantitation limit.
type DetectionLimit struct {
	TypeName *string `json:"type_name"`
	Measure  Measure `json:"measure"`
}

// LabInformation carries lab analysis metadata for a result.
type LabInformation struct {
	AnalysisStartDate          *string        `json:"analysis_start_date"`
	AnalysisStartTime          TimeDetail     `json:"analysis_start_time"`
	DetectionQuantitationLimit DetectionLimit `json:"detection_quantitation_limit"`
}

// Result is one analytical result within an activity.
type Result struct {
	Pcode            *string           `json:"pcode"`
	ProviderName     *string           `json:"provider_name"`
	Description      ResultDescription `json:"description"`
	AnalyticalMethod Method            `json:"analytical_method"`
	LabInformation   LabInformation    `json:"lab_information"`
}

// Activity is one sampling activity with its results.
type Activity struct {
	Description       ActivityDescription `json:"description"`
	SampleDescription SampleDescription   `json:"sample_description"`
	Results           []Result            `json:"results"`
}

// WaterQuality is the flattened water-quality record for a site.
type WaterQuality struct {
	Organization Organization `json:"organization"`
	Activities   []Activity   `json:"activities"`
}

// SinkRecord is the envelope published to the record sink after a
// successful extraction.
type SinkRecord struct {
	RecordType  string    `json:"record_type"`
	AgencyCode  string    `json:"agency_cd"`
	SiteNumber  string    `json:"site_no"`
	Record      any       `json:"record"`
	RetrievedAt time.Time `json:"retrieved_at"`
}
