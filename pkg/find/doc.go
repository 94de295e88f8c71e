// Package find maps structured find requests (pagination, sorting, filtering)
// onto a REST collection endpoint's wire conventions and maps the paginated
// response back into a uniform result shape.
//
// The wire protocol:
//
//	GET {endpoint}?q=field=value,field>value&s=fieldASC
//	    Accept: application/json
//	    X-Page-Size: 20        (only when a page size is requested)
//	    X-Page: 0
//
// Responses carry a JSON array body plus optional integer headers X-Page,
// X-Page-Size, X-Page-Count, X-Page-Total-Count and X-Total-Count describing
// pagination state.
//
// The package deliberately owns only this translation. The HTTP round trip is
// an injected Transport, the mapping between wire records and domain values is
// an injected Converter, and transport errors pass through unchanged so the
// caller keeps every detail needed for its own retry or messaging policy.
//
// Example usage:
//
//	tr, _ := transport.New(transport.DefaultConfig("MyApp/1.0.0"))
//	finder, _ := find.New(find.Config{
//		Endpoint:  "https://api.example.com/tickets",
//		Transport: tr,
//	}, ticketConverter)
//
//	result, err := finder.FindAll(ctx, &find.FindOptions{
//		Page: &find.PageRequest{Size: 20},
//		Sort: &find.Sort{Field: "date", Direction: find.SortDesc},
//	})
package find
