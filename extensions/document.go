// Package extensions holds the glTF extensions test models declare, and
// helpers to keep extensionsUsed/extensionsRequired consistent.
package extensions

import "github.com/qmuntal/gltf"

type Document gltf.Document

func (doc *Document) IsExtensionUsed(extname string) bool {
	return contains(doc.ExtensionsUsed, extname)
}

func (doc *Document) IsExtensionRequired(extname string) bool {
	return contains(doc.ExtensionsRequired, extname)
}

// Use declares extname in extensionsUsed, and in extensionsRequired when required.
func (doc *Document) Use(extname string, required bool) {
	if !doc.IsExtensionUsed(extname) {
		doc.ExtensionsUsed = append(doc.ExtensionsUsed, extname)
	}
	if required && !doc.IsExtensionRequired(extname) {
		doc.ExtensionsRequired = append(doc.ExtensionsRequired, extname)
	}
}

// MaterialExtension returns the decoded payload of extname on a material.
func MaterialExtension(mat *gltf.Material, extname string) interface{} {
	if mat == nil || mat.Extensions == nil {
		return nil
	}
	return mat.Extensions[extname]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
