package handlers

import (
	"net/http"

	"servit/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves categories, services and sub-services.
type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

func NewCatalogHandler(cs catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{CatalogService: cs}
}

func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) CreateCategoryHandler(c *gin.Context) {
	var in catalog.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.CatalogService.CreateCategory(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategoryHandler(c *gin.Context) {
	var in catalog.CategoryPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.CatalogService.UpdateCategory(c.Request.Context(), c.Param("categoryId"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.CatalogService.DeleteCategory(c.Request.Context(), c.Param("categoryId")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.CatalogService.ListServices(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var in catalog.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	service, err := h.CatalogService.CreateService(c.Request.Context(), c.Param("categoryId"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	service, err := h.CatalogService.GetService(c.Request.Context(), c.Param("categoryId"), c.Param("serviceId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var in catalog.ServicePatch
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	service, err := h.CatalogService.UpdateService(c.Request.Context(), c.Param("categoryId"), c.Param("serviceId"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.CatalogService.DeleteService(c.Request.Context(), c.Param("categoryId"), c.Param("serviceId")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *CatalogHandler) AddSubServiceHandler(c *gin.Context) {
	var in catalog.SubServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	sub, err := h.CatalogService.AddSubService(c.Request.Context(), c.Param("categoryId"), c.Param("serviceId"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *CatalogHandler) UpdateSubServiceHandler(c *gin.Context) {
	var in catalog.SubServicePatch
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	sub, err := h.CatalogService.UpdateSubService(c.Request.Context(),
		c.Param("categoryId"), c.Param("serviceId"), c.Param("subId"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *CatalogHandler) DeleteSubServiceHandler(c *gin.Context) {
	err := h.CatalogService.DeleteSubService(c.Request.Context(),
		c.Param("categoryId"), c.Param("serviceId"), c.Param("subId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
