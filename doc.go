// Package openapiagents provides a Go client SDK for the OpenAPI AI Agents
// validation API, a remote service that validates OpenAPI specifications and
// agent configurations against the AI Agents Standard, checks compliance
// frameworks, and estimates token consumption and cost.
//
// Basic usage:
//
//	client, err := openapiagents.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spec, err := openapiagents.LoadSpecification("openapi.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.ValidateOpenAPI(ctx, openapiagents.Structured(spec))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if result.Valid {
//	    fmt.Println("Certification:", result.CertificationLevel)
//	} else {
//	    fmt.Println("Validation failed:", result.Errors)
//	}
package openapiagents
