// Package marc reads and writes MARC 21 records in ISO 2709 transmission format.
//
// Only framing is handled here: the leader, the directory and the field and
// subfield delimiters. Character set conversion and content validation are
// left to the caller. Decoded records keep their original bytes (Record.Raw)
// and Writer copies those bytes unchanged, so a filter that passes records
// through does not alter them.
//
// # Usage
//
//	r := marc.NewReader(f)
//	for {
//	    rec, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err // wraps marc.ErrMalformed
//	    }
//	    for _, item := range rec.FieldsWithTag("952") { ... }
//	}
package marc
