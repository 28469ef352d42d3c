// Package mist lists macOS firmwares and installers and exports them.
//
// Two record kinds are supported: [Firmware] images for Apple silicon Macs and
// installer [Product] entries for Intel Macs. Both implement [Record], which
// supplies table and CSV rows.
//
// # Listing
//
// [ListFirmwares] and [ListProducts] run the listing pipeline:
//
//  1. validate the optional export path with [ValidateExportPath]
//  2. fetch the records from a [FirmwareProvider] or [ProductProvider]
//  3. export them with [Export] when a path was given
//  4. write the table produced by [RenderTable]
//
// The export path is always validated before anything is fetched. Records are
// never sorted or filtered; the provider's order is kept.
//
// # Export Formats
//
// The export path's extension selects the [Format]:
//
//   - csv: a header line (Signed,Name,Version,Build,Date or
//     Identifier,Name,Version,Build,Date) followed by one line per record
//   - json: an indented array of objects
//   - plist: an XML property list holding an array of dictionaries
//   - yaml: a block sequence of mappings
//
// JSON, property list and YAML exports share the same lowercase keys:
// signed, name, version, build, date, url and checksum for firmwares;
// identifier, name, version, build, date and distribution for products.
// Booleans are written as true or false and dates as YYYY-MM-DD.
//
// # Table
//
// [RenderTable] pads every column to its widest cell, header included, and
// separates columns with "│". The date column uses a [DateFormat] compiled
// from a strftime pattern by [ParseDateFormat].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMissingExportPath]: the export path is empty
//   - [ErrInvalidExportFileExtension]: the extension is not csv, json, plist or yaml
//   - [ErrInvalidData]: a record field is not valid UTF-8 text; nothing is written
//
// Filesystem errors from [Export] are returned unwrapped.
package mist
