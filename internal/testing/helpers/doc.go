// Package helpers provides test utility functions for the todos API.
//
// # Request Helpers
//
//	rec := helpers.NewRequest(t, http.MethodPost, "/todos").
//	    WithBody(helpers.TodoBody(map[string]interface{}{"title": "Buy milk"})).
//	    Do(router)
//
// # Assertion Helpers
//
//	helpers.AssertStatus(t, rec, http.StatusCreated)
//	helpers.AssertProblemDetails(t, rec, http.StatusNotFound, model.MsgTodoNotFound)
//
// # Pointer Helpers
//
//	title := helpers.StringPtr("test")
//	limit := helpers.IntPtr(2)
//	done := helpers.BoolPtr(true)
package helpers
