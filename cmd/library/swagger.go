package main

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"library-system/pkg/config"
	"library-system/pkg/models"
	"library-system/pkg/pagination"
)

const (
	swaggerDocPath = "/swagger/doc.json"
	swaggerUIPath  = "/swagger/index.html"
)

type collectionDoc struct {
	path   string
	schema string
	tag    string
}

var documentedCollections = []collectionDoc{
	{path: "/api/books", schema: "Book", tag: "Books"},
	{path: "/api/members", schema: "Member", tag: "Members"},
	{path: "/api/loans", schema: "Loan", tag: "Loans"},
}

// swaggerHandler serves doc.json from openAPIDocument and the Swagger UI assets for every other path.
func swaggerHandler() gin.HandlerFunc {
	ui := ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(swaggerDocPath))

	return func(c *gin.Context) {
		switch c.Param("any") {
		case "/doc.json":
			c.JSON(http.StatusOK, openAPIDocument(cfg.Swagger))
		case "", "/":
			redirectToSwagger(c)
		default:
			ui(c)
		}
	}
}

func redirectToSwagger(c *gin.Context) {
	c.Redirect(http.StatusFound, swaggerUIPath)
}

// openAPIDocument describes the HTTP API as an OpenAPI 3 document.
func openAPIDocument(meta config.SwaggerConfig) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       meta.Title,
			Description: meta.Description,
			Version:     meta.Version,
			Contact: &openapi3.Contact{
				Name:  meta.ContactName,
				Email: meta.ContactEmail,
			},
		},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: componentSchemas()},
	}

	for _, col := range documentedCollections {
		doc.Paths.Set(col.path, collectionPaths(col))
		doc.Paths.Set(col.path+"/{id}", itemPaths(col))
	}
	doc.Paths.Set("/api/books/{id}/borrow", actionPath("Books", "Borrow one copy of a book", "Book", ""))
	doc.Paths.Set("/api/books/{id}/return", actionPath("Books", "Return one copy of a book", "Book", ""))
	doc.Paths.Set("/api/loans/{id}/return", actionPath("Loans", "Return a loan and charge any late fee", "Loan", ""))
	doc.Paths.Set("/api/loans/{id}/renew", actionPath("Loans", "Extend the due date of an active loan", "Loan", "RenewRequest"))
	doc.Paths.Set("/manage/health", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:    []string{"Health"},
			Summary: "Database health",
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, response("UP", "")),
				openapi3.WithStatus(http.StatusServiceUnavailable, response("DOWN", "")),
			),
		},
	})

	return doc
}

func collectionPaths(col collectionDoc) *openapi3.PathItem {
	items := openapi3.NewArraySchema()
	items.Items = schemaRef(col.schema)
	page := &openapi3.ResponseRef{Value: openapi3.NewResponse().
		WithDescription("One page of " + col.tag).
		WithJSONSchema(items)}
	page.Value.Headers = openapi3.Headers{
		pagination.HeaderName: &openapi3.HeaderRef{Value: &openapi3.Header{Parameter: openapi3.Parameter{
			Description: "Pagination metadata as JSON",
			Schema:      schemaRef("PaginationMetadata"),
		}}},
	}

	return &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:    []string{col.tag},
			Summary: "List " + col.tag + " page by page",
			Parameters: openapi3.Parameters{
				queryParam("pageNumber", 1),
				queryParam("pageSize", pagination.DefaultPageSize),
			},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, page),
				openapi3.WithStatus(http.StatusBadRequest, response("Invalid pagination parameters", "Error")),
			),
		},
		Post: &openapi3.Operation{
			Tags:        []string{col.tag},
			Summary:     "Create a " + col.schema,
			RequestBody: requestBody(col.schema, true),
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusCreated, response("Created", col.schema)),
				openapi3.WithStatus(http.StatusBadRequest, response("Validation failed", "Error")),
				openapi3.WithStatus(http.StatusConflict, response("Storage constraint violated", "Error")),
				openapi3.WithStatus(http.StatusInternalServerError, response("Storage failure", "Error")),
			),
		},
	}
}

func itemPaths(col collectionDoc) *openapi3.PathItem {
	params := openapi3.Parameters{idParam()}
	return &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:       []string{col.tag},
			Summary:    "Get a " + col.schema,
			Parameters: params,
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, response("Found", col.schema)),
				openapi3.WithStatus(http.StatusNotFound, response("Not found", "Error")),
			),
		},
		Put: &openapi3.Operation{
			Tags:        []string{col.tag},
			Summary:     "Replace a " + col.schema,
			Parameters:  params,
			RequestBody: requestBody(col.schema, true),
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusNoContent, response("Updated", "")),
				openapi3.WithStatus(http.StatusBadRequest, response("Validation failed or id mismatch", "Error")),
				openapi3.WithStatus(http.StatusNotFound, response("Not found", "Error")),
			),
		},
		Delete: &openapi3.Operation{
			Tags:       []string{col.tag},
			Summary:    "Delete a " + col.schema,
			Parameters: params,
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusNoContent, response("Deleted", "")),
				openapi3.WithStatus(http.StatusNotFound, response("Not found", "Error")),
			),
		},
	}
}

// actionPath documents a POST on a single resource. body names an optional request schema.
func actionPath(tag, summary, schema, body string) *openapi3.PathItem {
	op := &openapi3.Operation{
		Tags:       []string{tag},
		Summary:    summary,
		Parameters: openapi3.Parameters{idParam()},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, response("Updated "+schema, schema)),
			openapi3.WithStatus(http.StatusBadRequest, response("Invalid request", "Error")),
			openapi3.WithStatus(http.StatusNotFound, response("Not found", "Error")),
			openapi3.WithStatus(http.StatusConflict, response("Not allowed in the current state", "Error")),
		),
	}
	if body != "" {
		op.RequestBody = requestBody(body, false)
	}
	return &openapi3.PathItem{Post: op}
}

var schemaNames = []string{"Link", "Book", "Member", "Loan", "RenewRequest", "PaginationMetadata", "Error"}

func schemaDefinition(name string) *openapi3.Schema {
	switch name {
	case "Link":
		return openapi3.NewObjectSchema().
			WithProperty("href", openapi3.NewStringSchema()).
			WithProperty("rel", openapi3.NewStringSchema()).
			WithProperty("method", openapi3.NewStringSchema())
	case "Book":
		return required(openapi3.NewObjectSchema().
			WithProperty("id", openapi3.NewUUIDSchema()).
			WithProperty("isbn", openapi3.NewStringSchema().WithMaxLength(20)).
			WithProperty("title", openapi3.NewStringSchema().WithMaxLength(200)).
			WithProperty("author", openapi3.NewStringSchema().WithMaxLength(100)).
			WithProperty("publisher", openapi3.NewStringSchema().WithMaxLength(100)).
			WithProperty("publicationYear", openapi3.NewIntegerSchema().WithMin(0)).
			WithProperty("category", openapi3.NewStringSchema().WithMaxLength(50)).
			WithProperty("totalCopies", openapi3.NewIntegerSchema().WithMin(0)).
			WithProperty("availableCopies", openapi3.NewIntegerSchema().WithMin(0)).
			WithProperty("status", statusSchema(models.BookAvailable, models.BookBorrowed, models.BookMaintenance, models.BookLost)).
			WithPropertyRef("links", linksRef()), "isbn", "title")
	case "Member":
		password := openapi3.NewStringSchema()
		password.WriteOnly = true
		return required(openapi3.NewObjectSchema().
			WithProperty("id", openapi3.NewUUIDSchema()).
			WithProperty("name", openapi3.NewStringSchema().WithMaxLength(100)).
			WithProperty("email", openapi3.NewStringSchema().WithFormat("email").WithMaxLength(100)).
			WithProperty("password", password).
			WithProperty("phone", openapi3.NewStringSchema().WithMaxLength(20)).
			WithProperty("registrationDate", openapi3.NewDateTimeSchema()).
			WithProperty("isActive", openapi3.NewBoolSchema()).
			WithPropertyRef("links", linksRef()), "name", "email")
	case "Loan":
		loanDays := openapi3.NewIntegerSchema().WithMin(0)
		loanDays.WriteOnly = true
		lateFee := openapi3.NewStringSchema()
		lateFee.Description = "Decimal amount, set once the loan is returned"
		return required(openapi3.NewObjectSchema().
			WithProperty("id", openapi3.NewUUIDSchema()).
			WithProperty("bookId", openapi3.NewUUIDSchema()).
			WithProperty("memberId", openapi3.NewUUIDSchema()).
			WithProperty("loanDays", loanDays).
			WithProperty("loanDate", openapi3.NewDateTimeSchema()).
			WithProperty("dueDate", openapi3.NewDateTimeSchema()).
			WithProperty("returnDate", openapi3.NewDateTimeSchema()).
			WithProperty("status", statusSchema(models.LoanActive, models.LoanReturned, models.LoanLate, models.LoanCancelled)).
			WithProperty("lateFee", lateFee).
			WithProperty("notes", openapi3.NewStringSchema().WithMaxLength(500)).
			WithPropertyRef("links", linksRef()), "bookId", "memberId")
	case "RenewRequest":
		return openapi3.NewObjectSchema().
			WithProperty("days", openapi3.NewIntegerSchema().WithMin(1).WithDefault(models.DefaultLoanDays))
	case "PaginationMetadata":
		return openapi3.NewObjectSchema().
			WithProperty("totalCount", openapi3.NewIntegerSchema()).
			WithProperty("pageSize", openapi3.NewIntegerSchema()).
			WithProperty("currentPage", openapi3.NewIntegerSchema()).
			WithProperty("totalPages", openapi3.NewIntegerSchema()).
			WithProperty("hasNext", openapi3.NewBoolSchema()).
			WithProperty("hasPrevious", openapi3.NewBoolSchema())
	case "Error":
		return required(openapi3.NewObjectSchema().
			WithProperty("error", openapi3.NewStringSchema()).
			WithProperty("message", openapi3.NewStringSchema()), "error")
	}
	return openapi3.NewObjectSchema()
}

func required(schema *openapi3.Schema, fields ...string) *openapi3.Schema {
	schema.Required = fields
	return schema
}

func componentSchemas() openapi3.Schemas {
	schemas := make(openapi3.Schemas, len(schemaNames))
	for _, name := range schemaNames {
		schemas[name] = openapi3.NewSchemaRef("", schemaDefinition(name))
	}
	return schemas
}

// schemaRef points at a component schema. The value is filled in so the document validates without a loader.
func schemaRef(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, schemaDefinition(name))
}

func linksRef() *openapi3.SchemaRef {
	links := openapi3.NewArraySchema()
	links.Items = schemaRef("Link")
	links.ReadOnly = true
	return openapi3.NewSchemaRef("", links)
}

func statusSchema[S ~int](values ...S) *openapi3.Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = int(v)
	}
	return openapi3.NewIntegerSchema().WithEnum(enum...)
}

func response(description, schema string) *openapi3.ResponseRef {
	resp := openapi3.NewResponse().WithDescription(description)
	if schema != "" {
		resp.Content = openapi3.NewContentWithJSONSchemaRef(schemaRef(schema))
	}
	return &openapi3.ResponseRef{Value: resp}
}

func requestBody(schema string, mandatory bool) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
		WithRequired(mandatory).
		WithJSONSchemaRef(schemaRef(schema))}
}

func idParam() *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewUUIDSchema())}
}

func queryParam(name string, def int) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Value: openapi3.NewQueryParameter(name).
		WithSchema(openapi3.NewIntegerSchema().WithMin(1).WithDefault(def))}
}
