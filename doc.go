// Package kson provides a JSON text codec for embedding in other software:
// a recursive-descent parser, an ordered container model and a serializer
// with compact and pretty-printed output.
//
// The package uses an internal package for character classes and string
// escaping.
//
// # Basic Usage
//
// Parsing a document:
//
//	doc, err := kson.ParseString(`{"a":1,"b":[1,2,3]}`)
//	obj, err := doc.AsObject()
//	a, err := obj.GetInt64("a")
//	b, err := obj.GetArray("b")
//
// Parsing a single value of any kind:
//
//	v, err := kson.ParseValueString("9223372036854775808") // *big.Int
//
// Building and rendering containers:
//
//	arr := kson.NewMutableArray(1, 2, 3)
//	fmt.Println(arr.PrettyString())
//
// # Numbers
//
// Number literals are classified while they are scanned. Integers that fit
// become int64 and larger ones *big.Int. Literals with a fraction or an
// exponent become float64 when they have at most 15 significant digits and
// a moderate exponent, and decimal.Decimal otherwise.
//
// # Character Ports
//
// The parser consumes an Input (an io.RuneReader) and the serializer writes
// to an Output (io.ByteWriter plus io.StringWriter). Use NewReaderInput and
// NewWriterOutput to adapt plain readers and writers.
//
// # Configuration
//
//	cfg := kson.DefaultConfig()
//	cfg.StrictKeys = true
//	doc, err := kson.ParseString(text, cfg)
//
// Duplicate object keys are accepted by default: the last value wins and a
// warning is logged through log/slog. StrictKeys turns them into errors.
//
// # Concurrency
//
// Parsing and serialization are synchronous and keep no shared state.
// Containers have no internal locking; share read-only views across
// goroutines and serialize access to mutable ones.
package kson
