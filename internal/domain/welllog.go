package domain

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/groundwatertools/well-data-service/internal/lithology"
)

// GWML/GeoSciML paths for the well-log schema, one constant per field so a
// schema change touches exactly one place.
const (
	pathWaterWell       = "//gwml:WaterWell"
	pathWellName        = "gml:name"
	pathBoundingPos     = "gml:boundedBy/gml:envelope/gml:pos"
	pathElevation       = "gwml:referenceElevation"
	pathElevationScheme = "gwml:wellStatus/gsml:CGI_TermValue/gsml:value[@codeSpace='urn:gov.usgs.nwis.alt_datum_cd']"
	pathWellDepth       = "gwml:wellDepth/gsml:CGI_NumericValue/gsml:principalValue"
	pathWaterUse        = "gwml:wellType/gsml:CGI_TermValue/gsml:value"
	pathOnlineResource  = "gwml:onlineResource"

	pathLogEntries      = "gwml:logElement/gsml:MappedInterval"
	pathLogMethod       = "gsml:observationMethod/gsml:CGI_TermValue/gsml:value"
	pathLogUnit         = "gsml:specification/gwml:HydrostratigraphicUnit"
	pathUnitDescription = "gml:description"
	pathUnitPurpose     = "gsml:purpose"
	pathComposition     = "gsml:composition/gsml:CompositionPart"
	pathCompLithology   = "gsml:lithology/gsml:ControlledConcept/gml:name"
	pathCompMaterial    = "gsml:material/gsml:UnconsolidatedMaterial"
	pathCompProportion  = "gsml:proportion/gsml:CGI_TermValue/gsml:value"
	pathLogShape        = "gsml:shape/gml:LineString"
	pathShapeCoords     = "gml:coordinates"

	pathCasingElements = "gwml:construction/gwml:WellCasing/gwml:wellCasingElement/gwml:WellCasingComponent"
	pathScreenElements = "gwml:construction/gwml:Screen/gwml:screenElement/gwml:ScreenComponent"
	pathElementLine    = "gwml:position/gml:LineString"
	pathLineUnit       = "gml:uom"
	pathLineCoords     = "gml:coordinates"
	pathElementMat     = "gwml:material/gsml:CGI_TermValue/gsml:value"
	pathCasingDiameter = "gwml:nominalPipeDimension/gsml:CGI_NumericValue/gsml:principalValue"
	// The screen diameter element really is spelled "nomical" in the GWML
	// responses; correcting it would silently null every screen diameter.
	pathScreenDiameter = "gwml:nomicalScreenDiameter/gsml:CGI_NumericValue/gsml:principalValue"
)

// ExtractWellLog walks a well-log document into a flat record. A nil
// document or one without a gwml:WaterWell node yields nil, which callers
// serialize as an empty object: "no record" rather than an error.
func ExtractWellLog(doc *etree.Document) *WellLog {
	if doc == nil {
		return nil
	}
	well := doc.FindElement(pathWaterWell)
	if well == nil {
		return nil
	}

	return &WellLog{
		Name:         FindText(well, pathWellName),
		Location:     extractLocation(well),
		Elevation:    extractElevation(well),
		WellDepth:    extractWellDepth(well),
		WaterUse:     FindText(well, pathWaterUse),
		Link:         extractLink(well),
		LogEntries:   extractLogEntries(well),
		Construction: extractConstruction(well),
	}
}

// extractLocation splits the bounding position into latitude then longitude.
// The schema guarantees that token order.
func extractLocation(well *etree.Element) Location {
	pos := FindText(well, pathBoundingPos)
	if pos == nil {
		return Location{}
	}
	tokens := strings.Split(*pos, " ")
	loc := Location{Latitude: &tokens[0]}
	if len(tokens) > 1 {
		loc.Longitude = &tokens[1]
	}
	return loc
}

func extractElevation(well *etree.Element) Elevation {
	elev := findElement(well, pathElevation)
	return Elevation{
		Value:  CastFloat(elementText(elev)),
		Unit:   OrDefault(Attr(elev, "uom"), "ft"),
		Scheme: FindText(well, pathElevationScheme),
	}
}

func extractWellDepth(well *etree.Element) Measurement {
	depth := findElement(well, pathWellDepth)
	return Measurement{
		Value: CastFloat(elementText(depth)),
		Unit:  OrDefault(Attr(depth, "uom"), "ft"),
	}
}

func extractLink(well *etree.Element) Link {
	link := findElement(well, pathOnlineResource)
	return Link{
		URL:   Attr(link, "xlink:href"),
		Title: Attr(link, "xlink:title"),
	}
}

func extractLogEntries(well *etree.Element) []LogEntry {
	intervals := well.FindElements(pathLogEntries)
	entries := make([]LogEntry, 0, len(intervals))
	for _, interval := range intervals {
		entries = append(entries, LogEntry{
			Method: FindText(interval, pathLogMethod),
			Unit:   extractLogUnit(findElement(interval, pathLogUnit)),
			Shape:  extractShape(findElement(interval, pathLogShape)),
		})
	}
	return entries
}

func extractLogUnit(unit *etree.Element) LogUnit {
	tokens := lithology.Tokenize(FindTextOr(unit, pathUnitDescription, ""))
	part := findElement(unit, pathComposition)
	lith := findElement(part, pathCompLithology)
	material := findElement(part, pathCompMaterial)
	proportion := findElement(part, pathCompProportion)

	return LogUnit{
		Description: FindText(unit, pathUnitDescription),
		UI: UnitDescriptor{
			Colors:    lithology.Colors(tokens),
			Materials: lithology.Materials(tokens),
		},
		Purpose: FindText(unit, pathUnitPurpose),
		Composition: Composition{
			Role: FindText(part, "gsml:role"),
			Lithology: CodedValue{
				Scheme: Attr(lith, "codeSpace"),
				Value:  elementText(lith),
			},
			Material: MaterialRef{
				Name:    FindText(material, "gml:name"),
				Purpose: FindText(material, "gsml:purpose"),
			},
			Proportion: CodedValue{
				Scheme: Attr(proportion, "codeSpace"),
				Value:  elementText(proportion),
			},
		},
	}
}

func extractShape(shape *etree.Element) Shape {
	return Shape{
		Dimension:   Attr(shape, "srsDimension"),
		Unit:        OrDefault(Attr(shape, "uom"), "ft"),
		Coordinates: ParseCoordinates(FindText(shape, pathShapeCoords)),
	}
}

// extractConstruction concatenates all casing elements followed by all
// screen elements, preserving document order within each group. The two
// element types share position and material paths but read their diameter
// from different schema branches.
func extractConstruction(well *etree.Element) []ConstructionElement {
	elements := make([]ConstructionElement, 0)
	for _, elem := range well.FindElements(pathCasingElements) {
		elements = append(elements, extractConstructionElement(elem, "casing", pathCasingDiameter))
	}
	for _, elem := range well.FindElements(pathScreenElements) {
		elements = append(elements, extractConstructionElement(elem, "screen", pathScreenDiameter))
	}
	return elements
}

func extractConstructionElement(elem *etree.Element, elemType, diameterPath string) ConstructionElement {
	line := findElement(elem, pathElementLine)
	diameter := findElement(elem, diameterPath)
	return ConstructionElement{
		Type: elemType,
		Position: Position{
			Unit:        OrDefault(FindText(line, pathLineUnit), "ft"),
			Coordinates: ParseCoordinates(FindText(line, pathLineCoords)),
		},
		Material: FindText(elem, pathElementMat),
		Diameter: Measurement{
			Value: CastFloat(elementText(diameter)),
			Unit:  OrDefault(Attr(diameter, "uom"), "in"),
		},
	}
}
