// Package http is the inbound REST adapter of the order system.
//
// Routes:
//
//	POST /api/orders                  place an order, 201
//	GET  /api/orders                  page through orders
//	GET  /api/orders/:id              one order, 404 if missing
//	GET  /api/orders/:id/status       {orderId, status, timestamp}
//	PUT  /api/orders/:id/status       administrative status override
//	GET  /api/queue                   queue depth and capacity
//	GET  /health                      liveness
//	GET  /metrics                     Prometheus exposition
//	GET  /swagger/index.html          API documentation (doc.json holds the document)
package http
