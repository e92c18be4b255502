// Package export defines the public contracts for fetching and decoding model
// export documents: Source identifies an origin (file, fs.FS, URL), Loader
// fetches it into a Document, and Parser decodes the Document into the raw
// Entry sequence. Implementations live under internal/export so the public
// surface stays decoupled from fetch and decode mechanics.
package export
