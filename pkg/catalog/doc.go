// Package catalog merges the open-class listing and the class syllabus/todo
// listing into the consolidated course database served to the mobile app.
//
// The syllabus source is indexed by composite subject key and supplies each
// course's department, major and instructor contact. The open-class source
// supplies the course records themselves. Build runs the whole pipeline:
//
//	result, err := catalog.Build(ctx, openClass, classTodo, "1.2", "2024.1")
//	if err != nil {
//		return err
//	}
//	data, err := result.Document.Encode(false)
package catalog
