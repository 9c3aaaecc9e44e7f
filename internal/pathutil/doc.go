// Package pathutil provides path template helpers and the dotted location
// builder used when reporting issues in generated documents.
//
// [PathBuilder] builds locations incrementally with push/pop semantics, so
// recursive walks only materialize a string when an issue is reported:
//
//	var p pathutil.PathBuilder
//	p.Push("components")
//	p.Push("schemas")
//	p.Push("Pet")
//	p.Push("properties")
//	p.Push("owner")
//	p.String() // components.schemas.Pet.properties.owner
//
// Segments that contain a dot are quoted, so a media type such as
// "application/vnd.pets+json" stays a single segment:
//
//	content["application/vnd.pets+json"].schema
//
// [TemplateParams] and [CheckTemplate] inspect OpenAPI path templates.
package pathutil
