// Package domain models National Ground-Water Monitoring Network (NGWMN)
// well records and extracts them from the network's XML services.
//
// # Data Source
//
// Well logs and water-quality activities come from the NGWMN iddata service
// as deeply nested XML. Well logs use the GroundWater Markup Language (GWML)
// with GeoSciML (gsml) and GML elements; water-quality responses follow the
// WQX schema. The service reshapes both into flat records for a well
// information front end.
//
// # Extraction Conventions
//
// Every leaf read goes through [FindText], so a missing node at any depth
// yields a null field rather than an error. Agencies report gaps three ways,
// and each is normalized to null:
//
//	missing node          →  null
//	text "unknown"        →  null (element text sentinel, lowercase only)
//	attribute "Unknown"   →  default substitution via [OrDefault]
//
// The two sentinel spellings are matched exactly as the network emits them:
// element text uses lowercase "unknown", unit-of-measure attributes use
// capitalized "Unknown". [FindText] does not treat "Unknown" as absent and
// [OrDefault] does not treat "unknown" as absent.
//
// Units of measure default per component when the uom attribute is absent:
// feet ("ft") for elevations, depths, and positions; inches ("in") for
// casing and screen diameters.
//
// Depth intervals arrive as space-delimited coordinate pairs, e.g.
// "0.0 25.5" meaning the interval from 0 to 25.5 feet. See
// [ParseCoordinates].
//
// Extraction is a pure single-pass walk of the input tree: no state is
// retained between calls and extractors are safe for concurrent use.
package domain
