// Package docs registra a documentação Swagger da API.
// Regenerar com: swag init -g cmd/api/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Cadastra um usuário", "responses": {"201": {"description": "Created"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Autentica um usuário", "responses": {"200": {"description": "OK"}}}},
        "/auth/refresh-token": {"post": {"tags": ["auth"], "summary": "Renova um token JWT", "responses": {"200": {"description": "OK"}}}},
        "/auth/me": {"get": {"security": [{"Bearer": []}], "tags": ["auth"], "summary": "Usuário atual", "responses": {"200": {"description": "OK"}}}},
        "/auth/profile": {"put": {"security": [{"Bearer": []}], "tags": ["auth"], "summary": "Atualiza o perfil", "responses": {"200": {"description": "OK"}}}},
        "/auth/preferences": {"put": {"security": [{"Bearer": []}], "tags": ["auth"], "summary": "Atualiza as preferências", "responses": {"200": {"description": "OK"}}}},
        "/auth/change-password": {"post": {"security": [{"Bearer": []}], "tags": ["auth"], "summary": "Altera a senha", "responses": {"200": {"description": "OK"}}}},
        "/goals": {"get": {"security": [{"Bearer": []}], "tags": ["goals"], "summary": "Lista metas", "responses": {"200": {"description": "OK"}}}},
        "/goals/long-term": {"post": {"security": [{"Bearer": []}], "tags": ["goals"], "summary": "Cria meta de longo prazo", "responses": {"201": {"description": "Created"}}}},
        "/goals/long-term/{id}": {
            "put": {"security": [{"Bearer": []}], "tags": ["goals"], "summary": "Atualiza meta de longo prazo", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["goals"], "summary": "Remove meta de longo prazo", "responses": {"204": {"description": "No Content"}}}
        },
        "/goals/long-term/{id}/milestones": {"post": {"security": [{"Bearer": []}], "tags": ["goals"], "summary": "Adiciona marco", "responses": {"201": {"description": "Created"}}}},
        "/goals/long-term/{id}/milestones/{milestoneId}": {
            "put": {"security": [{"Bearer": []}], "tags": ["goals"], "summary": "Atualiza marco", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["goals"], "summary": "Remove marco", "responses": {"204": {"description": "No Content"}}}
        },
        "/goals/short-term": {"post": {"security": [{"Bearer": []}], "tags": ["goals"], "summary": "Cria meta de curto prazo", "responses": {"201": {"description": "Created"}}}},
        "/goals/short-term/{id}": {
            "put": {"security": [{"Bearer": []}], "tags": ["goals"], "summary": "Atualiza meta de curto prazo", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["goals"], "summary": "Remove meta de curto prazo", "responses": {"204": {"description": "No Content"}}}
        },
        "/tasks": {
            "get": {"security": [{"Bearer": []}], "tags": ["tasks"], "summary": "Lista tarefas", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["tasks"], "summary": "Cria tarefa", "responses": {"201": {"description": "Created"}}}
        },
        "/tasks/batch": {"put": {"security": [{"Bearer": []}], "tags": ["tasks"], "summary": "Atualiza tarefas em lote", "responses": {"200": {"description": "OK"}}}},
        "/tasks/{id}": {
            "put": {"security": [{"Bearer": []}], "tags": ["tasks"], "summary": "Atualiza tarefa", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["tasks"], "summary": "Remove tarefa", "responses": {"204": {"description": "No Content"}}}
        },
        "/voice/process": {"post": {"security": [{"Bearer": []}], "tags": ["voice"], "summary": "Processa comando de voz", "responses": {"200": {"description": "OK"}}}},
        "/voice/history": {
            "get": {"security": [{"Bearer": []}], "tags": ["voice"], "summary": "Histórico de comandos", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["voice"], "summary": "Limpa o histórico", "responses": {"204": {"description": "No Content"}}}
        },
        "/ai/suggestions": {"post": {"security": [{"Bearer": []}], "tags": ["ai"], "summary": "Sugestões", "responses": {"200": {"description": "OK"}}}},
        "/ai/generate/short-term-goals": {"post": {"security": [{"Bearer": []}], "tags": ["ai"], "summary": "Gera metas de curto prazo", "responses": {"201": {"description": "Created"}}}},
        "/ai/generate/tasks": {"post": {"security": [{"Bearer": []}], "tags": ["ai"], "summary": "Gera tarefas", "responses": {"201": {"description": "Created"}}}}
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: \"Bearer {token}\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo guarda as informações exportadas da documentação
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Voice Productivity API",
	Description:      "API do assistente de produtividade por voz: metas, tarefas e comandos falados",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
