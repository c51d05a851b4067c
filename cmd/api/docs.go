package main

// @title           Panel Comercio API
// @version         1.0
// @description     API de administración del comercio: usuarios, catálogo, descuentos, comisiones y facturación

// @contact.name   Soporte
// @contact.email  soporte@panel-comercio.local

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Encabezado de autenticación JWT con el esquema Bearer. Ejemplo: "Bearer {token}"
