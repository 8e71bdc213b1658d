// Package rebrand rewrites product and domain names in blog documents.
//
//	+-------------+
//	|  Discover   |  app/blog/**/page.mdx
//	+------+------+
//	       |
//	+------+------+
//	| ProcessFile |  read -> replace -> compare -> write
//	+------+------+
//	       |
//	+------+------+
//	|   Summary   |  updated / errors / total
//	+-------------+
//
// 🔄 Flow:
//  1. Discover builds the file set once, before anything is written
//  2. Each file is processed on its own; a failure is recorded and the run moves on
//  3. Files whose content did not change are never written
//  4. The summary is printed exactly once, after the last file
//
// Hidden files and directories (any path segment starting with ".") are never
// matched.
//
// ⚠️ Writes truncate the file in place. There is no backup and no atomic rename.
package rebrand
