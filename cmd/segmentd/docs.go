package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           segmentd API
// @version         1.0
// @description     HTTP API for human-segmentation detection and stream control.
//
// @contact.name   segmentd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
