// Package multipart encodes named form fields and file parts into a
// multipart/form-data request body incrementally, without materializing
// the complete body in memory.
//
// The Encoder implements io.Reader: an HTTP transport pulls the encoded
// bytes through a fixed-size buffer, and the encoder resumes mid-part
// across calls of any buffer size, down to one byte. Parts whose content
// is not yet available when encoding starts are expressed as Pending
// entries wrapping an async.Future; the encoder awaits each future
// in-line when its cursor reaches it.
//
// # Usage
//
//	upload := async.Async(ctx, func(ctx context.Context) ([]multipart.PartData, error) {
//	    return pickFiles(ctx)
//	})
//
//	enc := multipart.NewEncoder(multipart.NewBoundary(),
//	    []multipart.Field{{Name: "album", Value: "holiday"}},
//	    []multipart.Part{
//	        multipart.Known(multipart.PartData{
//	            Name:     "cover",
//	            Filename: "cover.jpg",
//	            MIMEType: "image/jpeg",
//	            Content:  multipart.Bytes(cover),
//	        }),
//	        multipart.Pending(upload),
//	    })
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, enc)
//	req.Header.Set("Content-Type", enc.ContentType())
//
// An Encoder serves exactly one body: it is driven to exhaustion once and
// then discarded. It is not safe for concurrent use; the single reader
// draining the body must be the only caller of Read.
package multipart
