package fallback

import (
	"fmt"
	"strings"
)

// slideContent 合成幻灯片要点内容
// 分支按主题特异性从高到低匹配，最后落到基于标题词的通用模板。
func slideContent(title string, t topics) string {
	titleLower := strings.ToLower(title)

	switch {
	case t.coffee && strings.Contains(titleLower, "espresso"):
		return `• Espresso is a concentrated coffee beverage brewed by forcing hot water through finely-ground coffee beans
• Originated in Italy in the early 20th century, named for the speed of preparation
• Characterized by rich, bold flavor and distinctive crema layer on top
• Typically served in small 1-2 ounce shots, stronger than regular coffee
• Made using high pressure (9 bars) and specific temperature (90-96°C)
• Base for many popular coffee drinks like cappuccino, latte, and Americano`
	case t.devotional && strings.Contains(titleLower, "greatness"):
		return `• Divine attributes and cosmic significance
• Symbolism and spiritual meaning
• Devotional practices and traditions
• Impact on spiritual seekers
• Timeless wisdom and teachings
• Universal reverence and worship`
	case t.devotional && strings.Contains(titleLower, "temple"):
		return `• Historical and spiritual significance
• Architectural beauty and design
• Sacred rituals and ceremonies
• Devotee experiences and blessings
• Festivals and celebrations
• Pilgrimage importance`
	case t.technical && (t.healthcareContext || healthTitled(titleLower)):
		return healthcareSlideContent(titleLower)
	case t.technical:
		return `• Core concepts and fundamental principles
• Technical specifications and requirements
• Implementation approaches and methodologies
• Best practices and industry standards
• Common challenges and solutions
• Future trends and developments`
	case t.business:
		return `• Market overview and current trends
• Key business strategies and approaches
• Competitive advantages and opportunities
• Implementation frameworks and processes
• Success metrics and KPIs
• Growth potential and future outlook`
	case t.science:
		return `• Scientific definition and fundamental principles
• Key research findings and discoveries
• Experimental methods and approaches
• Current understanding and theories
• Practical applications and implications
• Future research directions`
	case t.health:
		return `• Health definition and medical significance
• Key health benefits and considerations
• Important medical aspects and factors
• Prevention and treatment approaches
• Health implications and recommendations
• Summary of health-related information`
	case t.education:
		return `• Educational definition and learning objectives
• Key concepts and fundamental principles
• Teaching approaches and methodologies
• Learning outcomes and applications
• Educational benefits and importance
• Summary of educational content`
	}

	if words := meaningfulWords(title); len(words) > 0 {
		mainTopic := words[0]
		return fmt.Sprintf(`• Introduction to %s and its significance
• Key characteristics and defining features of %s
• Important aspects and practical applications
• Benefits, advantages, and value proposition
• Real-world examples and use cases
• Summary and key takeaways about %s`, mainTopic, mainTopic, mainTopic)
	}
	return `• Definition and core concepts
• Key characteristics and features
• Important aspects and applications
• Benefits and advantages
• Practical examples and use cases
• Summary and key takeaways`
}

// healthcareSlideContent 医疗 AI 主题的幻灯片子分支
func healthcareSlideContent(titleLower string) string {
	switch {
	case strings.Contains(titleLower, "benefit"):
		return `• Enhanced diagnostic accuracy through AI-powered medical imaging analysis
• Improved patient care with predictive analytics and early intervention systems
• Streamlined administrative processes reducing operational costs and wait times
• Personalized treatment plans based on comprehensive patient data analysis
• Accelerated drug discovery and medical research through AI algorithms
• Improved healthcare accessibility via telemedicine and remote monitoring`
	case strings.Contains(titleLower, "challenge") || strings.Contains(titleLower, "problem") || strings.Contains(titleLower, "issue"):
		return `• Data privacy and security concerns with patient information
• Regulatory compliance and FDA approval requirements
• Integration challenges with existing healthcare systems
• High implementation costs and resource requirements
• Need for extensive training and change management
• Ethical considerations and algorithmic bias in AI decisions`
	case strings.Contains(titleLower, "application") || strings.Contains(titleLower, "use") || strings.Contains(titleLower, "current"):
		return `• Medical imaging analysis for radiology and pathology
• Clinical decision support systems for diagnosis
• Electronic health records (EHR) management and analysis
• Drug discovery and pharmaceutical research
• Remote patient monitoring and telemedicine
• Administrative automation and workflow optimization`
	case strings.Contains(titleLower, "future") || strings.Contains(titleLower, "scope") || strings.Contains(titleLower, "trend"):
		return `• Advanced AI diagnostics with higher accuracy rates
• Personalized medicine based on genetic and lifestyle data
• Predictive healthcare preventing diseases before onset
• AI-assisted surgery and robotic procedures
• Global healthcare accessibility through AI platforms
• Integration of AI with IoT and wearable devices`
	default:
		return `• AI applications transforming healthcare delivery and patient outcomes
• Machine learning algorithms improving diagnostic precision and speed
• Data-driven insights enabling personalized medicine and treatment optimization
• Automation reducing administrative burden and improving efficiency
• Predictive analytics identifying health risks and enabling preventive care
• Integration challenges and solutions for healthcare AI implementation`
	}
}

// sectionContent 合成文档章节段落内容
func sectionContent(title string, t topics) string {
	titleLower := strings.ToLower(title)

	switch {
	case t.coffee && strings.Contains(titleLower, "espresso"):
		return `Espresso is a concentrated coffee beverage that has become the foundation of modern coffee culture. Originating in Italy in the early 20th century, espresso gets its name from the Italian word meaning "pressed out" or "expressed," referring to the method of forcing hot water through finely-ground coffee beans under high pressure.

The preparation of espresso requires specific equipment and techniques. A typical espresso shot is made by forcing water at approximately 9 bars of pressure through 7-9 grams of finely-ground coffee beans at a temperature between 90-96°C (194-205°F). This process extracts the coffee's oils, flavors, and aromatic compounds in a concentrated form, typically producing 1-2 fluid ounces of liquid.

One of the distinguishing characteristics of espresso is the crema, a golden-brown foam layer that forms on top of a properly extracted shot. This crema is created by the emulsification of coffee oils and carbon dioxide released during the brewing process. The quality of the crema often indicates the quality of the espresso shot.

Espresso serves as the base for many popular coffee beverages, including cappuccino, latte, macchiato, and Americano. Its concentrated nature makes it ideal for mixing with milk, water, or other ingredients while maintaining a strong coffee flavor. The versatility and intensity of espresso have made it a cornerstone of coffee culture worldwide.

The flavor profile of espresso is typically described as bold, rich, and complex, with notes that can range from chocolatey and nutty to fruity and acidic, depending on the coffee beans used and the roasting process. Understanding espresso is essential for anyone interested in coffee, as it represents both a beverage in itself and the foundation for countless other coffee preparations.`
	case t.devotional:
		return fmt.Sprintf(`%s holds profound spiritual significance and represents deep devotional meaning. This topic encompasses important aspects of faith, tradition, and divine wisdom that have inspired countless devotees throughout history.

The key elements of %s include spiritual teachings, devotional practices, and cultural traditions that form an integral part of religious understanding. These aspects work together to provide a comprehensive view of the subject matter and its importance in spiritual life.

Important aspects include the historical significance, symbolic meanings, devotional practices, and the impact on spiritual seekers. Understanding these elements provides valuable insights into the depth and richness of this spiritual topic.

This section covers the fundamental aspects of %s, providing readers with a solid foundation for understanding its significance and importance in the broader context of spiritual and devotional practices.`, title, title, title)
	case t.technical && (t.healthcareContext || healthTitled(titleLower)):
		return healthcareSectionContent(title, titleLower)
	case t.technical:
		return fmt.Sprintf(`%s represents a fundamental concept in modern technology and computing. This topic encompasses core principles, implementation strategies, and practical applications that are essential for understanding contemporary technical systems.

The key aspects of %s include technical specifications, architectural considerations, and implementation methodologies. These elements work together to form a comprehensive understanding of how this technology functions and how it can be effectively utilized in various contexts.

Important considerations include performance characteristics, scalability requirements, security implications, and integration challenges. Understanding these aspects is crucial for making informed decisions about adoption and implementation.

This section provides a thorough examination of %s, covering theoretical foundations, practical applications, and best practices that will help readers develop a comprehensive understanding of this important technical topic.`, title, title, title)
	case t.business:
		return fmt.Sprintf(`%s is a critical aspect of modern business strategy and operations. This topic encompasses key principles, strategic approaches, and practical applications that are essential for organizational success in today's competitive marketplace.

The fundamental elements of %s include market analysis, strategic planning, implementation frameworks, and performance measurement. These components work together to create a comprehensive approach to business development and growth.

Key considerations include market opportunities, competitive positioning, resource allocation, and risk management. Understanding these factors is essential for making informed business decisions and achieving sustainable competitive advantages.

This section provides an in-depth exploration of %s, covering strategic concepts, practical applications, and real-world examples that will help readers understand how to effectively implement and manage this important business function.`, title, title, title)
	case t.science:
		return fmt.Sprintf(`%s represents an important scientific concept that plays a significant role in our understanding of the natural world. This topic encompasses fundamental principles, research findings, and practical applications that are essential for scientific knowledge.

The scientific aspects of %s include theoretical foundations, experimental evidence, and empirical observations. These elements work together to form a comprehensive understanding of how this concept functions within scientific frameworks and contributes to broader scientific knowledge.

Key scientific considerations include the definition and scope of the concept, its relationship to other scientific principles, current research and understanding, and practical applications in scientific contexts. Understanding these aspects is crucial for a thorough grasp of this scientific topic.

This section provides a detailed scientific exploration of %s, covering theoretical foundations, research findings, and practical applications that will help readers develop a comprehensive understanding of this important scientific concept.`, title, title, title)
	case t.health:
		return fmt.Sprintf(`%s is an important health-related topic that has significant implications for well-being and medical understanding. This subject encompasses key health concepts, medical information, and practical health considerations that are essential for maintaining good health.

The health aspects of %s include medical definitions, health benefits or concerns, preventive measures, and treatment approaches where applicable. These elements work together to provide a comprehensive view of how this topic relates to health and wellness.

Important health considerations include understanding the health implications, recognizing key health factors, identifying preventive strategies, and knowing when to seek medical advice. Each of these aspects contributes to a thorough understanding of the health-related dimensions of this topic.

This section provides a detailed health-focused exploration of %s, covering essential health information, medical considerations, and practical health guidance that will help readers understand the health-related aspects of this important topic.`, title, title, title)
	case t.education:
		return fmt.Sprintf(`%s is a fundamental educational topic that plays an important role in learning and knowledge acquisition. This subject encompasses key educational concepts, learning objectives, and teaching approaches that are essential for effective education.

The educational aspects of %s include learning objectives, core concepts, teaching methodologies, and assessment strategies. These elements work together to form a comprehensive educational framework that supports effective learning and knowledge transfer.

Key educational considerations include understanding the learning goals, identifying core concepts and principles, exploring effective teaching methods, and recognizing practical applications in educational contexts. Understanding these aspects is crucial for both educators and learners.

This section provides a detailed educational exploration of %s, covering learning objectives, core concepts, teaching approaches, and practical applications that will help readers develop a comprehensive understanding of this important educational topic.`, title, title, title)
	}

	if words := meaningfulWords(title); len(words) > 0 {
		mainTopic := words[0]
		return fmt.Sprintf(`%s is a significant topic that encompasses multiple important aspects and dimensions. Understanding %s requires examining its core concepts, key characteristics, and practical applications in various contexts.

The fundamental elements of %s include essential principles, defining characteristics, and relevant applications that contribute to a comprehensive understanding. These components work together to form a complete picture of %s and its significance.

Key aspects to consider include the definition and scope of %s, its key characteristics and features, important applications and use cases, and the benefits or value it provides. Each of these dimensions contributes to a thorough understanding of the subject matter.

This section provides a detailed exploration of %s, covering essential information about %s, important concepts, practical applications, and key insights that will help readers develop a comprehensive understanding of this important topic.`, title, mainTopic, title, mainTopic, mainTopic, title, mainTopic)
	}
	return fmt.Sprintf(`%s is a significant topic that encompasses multiple important aspects and dimensions. Understanding this subject requires examining its core concepts, historical context, and practical applications.

The fundamental elements of %s include key principles, important characteristics, and relevant applications. These components work together to form a comprehensive understanding of the topic and its significance in various contexts.

Key aspects to consider include the definition and scope of the topic, its historical development, current applications and relevance, and future implications. Each of these dimensions contributes to a thorough understanding of the subject matter.

This section provides a detailed exploration of %s, covering essential information, important concepts, and practical insights that will help readers develop a comprehensive understanding of this important topic.`, title, title, title)
}

// healthcareSectionContent 医疗 AI 主题的章节子分支
func healthcareSectionContent(title, titleLower string) string {
	switch {
	case strings.Contains(titleLower, "benefit"):
		return fmt.Sprintf(`%s represents a transformative development in modern healthcare, leveraging artificial intelligence and advanced technologies to revolutionize medical practices and patient care. The integration of AI brings together cutting-edge technology with healthcare expertise to create innovative solutions that significantly improve outcomes, efficiency, and accessibility.

Enhanced diagnostic capabilities represent one of the most significant benefits. AI-powered systems can analyze medical images, including X-rays, MRIs, and CT scans, with remarkable accuracy, often detecting patterns and anomalies that might be missed by human analysis. Machine learning algorithms trained on vast datasets can identify early signs of diseases such as cancer, enabling earlier diagnosis and more effective treatment planning. This leads to improved patient outcomes and potentially saves lives through early intervention.

Predictive analytics enable healthcare providers to identify patients at risk for various conditions and intervene proactively. AI systems can analyze patient data including medical history, vital signs, lab results, and lifestyle factors to predict potential health complications before they become critical. This preventive approach reduces hospital readmissions, improves long-term patient health, and reduces overall healthcare costs.

Operational efficiency is dramatically improved through AI automation of administrative tasks such as appointment scheduling, billing processes, insurance claim processing, and documentation. Natural language processing enables automatic transcription of doctor-patient conversations into electronic health records, reducing the time healthcare professionals spend on paperwork and allowing them to focus more on direct patient care.

Personalized medicine is another major advantage, as AI can analyze individual patient data including genetics, medical history, treatment responses, and lifestyle factors to recommend customized treatment plans. This approach moves away from one-size-fits-all medicine toward treatments tailored to each patient's unique characteristics, improving effectiveness and reducing adverse effects.

The integration of AI in healthcare also accelerates medical research and drug discovery. AI algorithms can analyze vast amounts of scientific literature, clinical trial data, and molecular structures to identify potential drug candidates and treatment combinations much faster than traditional methods. This has the potential to bring new treatments to patients more quickly and at lower costs.

Telemedicine platforms enhanced with AI capabilities improve healthcare accessibility, especially for patients in remote areas or those with mobility limitations. AI-powered chatbots can provide initial triage, answer common health questions, and guide patients to appropriate care. Remote patient monitoring systems use AI to continuously track health metrics and alert healthcare providers to concerning changes, enabling timely intervention even when patients are at home.

These benefits collectively represent a significant advancement in healthcare delivery, improving both the quality of care and the efficiency of healthcare systems while making medical services more accessible to a broader population.`, title)
	case strings.Contains(titleLower, "challenge") || strings.Contains(titleLower, "problem") || strings.Contains(titleLower, "issue"):
		return fmt.Sprintf(`%s presents several important considerations that healthcare organizations must address when implementing artificial intelligence solutions. While AI offers tremendous potential, successful integration requires careful attention to various challenges and obstacles.

Data privacy and security represent primary concerns, as healthcare AI systems require access to sensitive patient information. Ensuring compliance with regulations such as HIPAA in the United States and GDPR in Europe is essential. Healthcare organizations must implement robust security measures, encryption protocols, and access controls to protect patient data from breaches and unauthorized access. The complexity of maintaining data security while enabling AI analysis creates ongoing challenges for IT departments.

Regulatory compliance and approval processes present significant hurdles. Medical AI applications often require FDA approval or similar regulatory clearance, which can be time-consuming and expensive. The regulatory landscape for AI in healthcare is still evolving, creating uncertainty for developers and healthcare providers. Ensuring that AI systems meet clinical standards and can be validated for safety and effectiveness requires extensive testing and documentation.

Integration with existing healthcare systems poses technical challenges. Many healthcare facilities use legacy electronic health record (EHR) systems that may not easily integrate with new AI technologies. Interoperability issues between different systems can prevent seamless data sharing and limit the effectiveness of AI solutions. Healthcare organizations must invest in infrastructure upgrades and middleware solutions to enable effective AI integration.

High implementation costs and resource requirements can be prohibitive for many healthcare organizations. AI systems require significant initial investment in hardware, software, training, and ongoing maintenance. Smaller healthcare facilities may struggle to afford these costs, potentially widening the gap between well-resourced and under-resourced healthcare providers. Additionally, the need for specialized IT staff and data scientists adds to operational expenses.

Training and change management represent critical challenges. Healthcare professionals must be trained to use AI tools effectively and understand their limitations. Resistance to change and concerns about AI replacing human judgment can create cultural barriers to adoption. Building trust in AI systems requires demonstrating their value, ensuring transparency in how decisions are made, and maintaining human oversight in critical decisions.

Ethical considerations and algorithmic bias are important concerns. AI systems trained on biased datasets may perpetuate or amplify existing healthcare disparities. Ensuring that AI algorithms are fair and equitable across different patient populations requires careful attention to dataset composition and algorithm design. The "black box" nature of some AI systems makes it difficult to understand how decisions are made, raising questions about accountability and transparency.

Addressing these challenges requires a comprehensive approach involving technology, policy, training, and cultural change. Despite these obstacles, the potential benefits of AI in healthcare make overcoming these challenges worthwhile for improving patient care and healthcare delivery.`, title)
	case strings.Contains(titleLower, "application") || strings.Contains(titleLower, "use") || strings.Contains(titleLower, "current"):
		return fmt.Sprintf(`%s encompasses a wide range of practical implementations where artificial intelligence is actively transforming healthcare delivery and improving patient outcomes. These applications represent real-world uses of AI technology that are currently being deployed in healthcare settings worldwide.

Medical imaging and diagnostic applications represent one of the most advanced areas of AI in healthcare. AI algorithms can analyze X-rays, CT scans, MRIs, mammograms, and other medical images with remarkable accuracy, often matching or exceeding the performance of experienced radiologists. These systems can detect tumors, fractures, abnormalities, and early signs of diseases such as cancer, enabling earlier diagnosis and treatment. Companies like Google Health and IBM Watson have developed AI systems that can identify diabetic retinopathy, skin cancer, and other conditions from medical images.

Clinical decision support systems use AI to assist healthcare providers in making diagnostic and treatment decisions. These systems analyze patient data including symptoms, medical history, lab results, and vital signs to suggest possible diagnoses and recommend treatment options. They can help reduce diagnostic errors, ensure adherence to clinical guidelines, and provide evidence-based recommendations. Epic Systems and Cerner have integrated AI-powered decision support into their electronic health record platforms.

Electronic health records (EHR) management benefits significantly from AI applications. Natural language processing enables automatic extraction of information from unstructured clinical notes, improving data entry efficiency and accuracy. AI can identify relevant information from patient records, flag important findings, and help organize information for easier access by healthcare providers. This reduces the time spent on documentation and improves the quality of patient records.

Drug discovery and pharmaceutical research have been revolutionized by AI applications. Machine learning algorithms can analyze vast databases of molecular structures, scientific literature, and clinical trial data to identify potential drug candidates. AI can predict how molecules will interact with biological targets, optimize drug formulations, and identify new uses for existing medications. Companies like Atomwise and BenevolentAI use AI to accelerate the drug discovery process, potentially reducing development time from years to months.

Remote patient monitoring and telemedicine applications leverage AI to enable continuous health tracking and virtual care delivery. Wearable devices and sensors can collect patient data including heart rate, blood pressure, glucose levels, and activity patterns. AI algorithms analyze this data to detect anomalies, predict health events, and alert healthcare providers to concerning changes. This enables proactive care management and reduces the need for frequent in-person visits, particularly valuable for patients with chronic conditions.

Administrative automation represents another important application area. AI-powered systems can automate appointment scheduling, insurance claim processing, billing, and prior authorization requests. Natural language processing enables chatbots and virtual assistants to handle patient inquiries, schedule appointments, and provide basic health information. This reduces administrative burden on healthcare staff and improves operational efficiency.

These current applications demonstrate the practical value of AI in healthcare, showing how technology can improve both clinical outcomes and operational efficiency while making healthcare more accessible and personalized.`, title)
	case strings.Contains(titleLower, "future") || strings.Contains(titleLower, "scope") || strings.Contains(titleLower, "trend"):
		return fmt.Sprintf(`%s represents an exciting frontier in healthcare technology, with tremendous potential for transforming medical practices and patient care in the coming years. The future of AI in healthcare promises even more advanced capabilities, broader adoption, and deeper integration into all aspects of healthcare delivery.

Advanced AI diagnostics will achieve even higher levels of accuracy and speed, potentially detecting diseases at earlier stages than currently possible. Future AI systems will integrate multiple data sources including medical images, genetic information, lab results, and patient history to provide comprehensive diagnostic insights. These systems may be able to identify diseases before symptoms appear, enabling truly preventive medicine. The development of explainable AI will make diagnostic decisions more transparent and trustworthy for healthcare providers.

Personalized medicine will reach new heights as AI systems become better at analyzing individual patient characteristics. Future applications will use comprehensive genetic profiling, microbiome analysis, lifestyle data, and real-time health monitoring to create highly customized treatment plans. AI will help identify which treatments will be most effective for specific patients, reducing trial-and-error approaches and improving treatment outcomes. This precision medicine approach will become standard practice rather than experimental.

Predictive healthcare will enable true prevention of diseases before they develop. AI systems will analyze patterns across large populations to identify risk factors and predict health outcomes with high accuracy. Healthcare providers will be able to intervene proactively, recommending lifestyle changes, preventive treatments, or monitoring strategies before conditions become serious. This shift from reactive to predictive healthcare will significantly improve population health and reduce healthcare costs.

AI-assisted surgery and robotic procedures will become more sophisticated and widely available. Surgical robots enhanced with AI will provide surgeons with real-time guidance, precision assistance, and enhanced visualization. AI systems will help plan complex surgeries, simulate procedures before they occur, and provide intraoperative support. These technologies will make advanced surgical procedures more accessible and reduce the risk of complications.

Global healthcare accessibility will be dramatically improved through AI-powered platforms that can deliver medical expertise to underserved areas. AI diagnostic systems running on mobile devices will enable healthcare delivery in remote locations without requiring extensive infrastructure. Telemedicine platforms enhanced with AI will provide specialist consultations to patients anywhere in the world. Language translation AI will break down barriers to healthcare access for diverse populations.

Integration of AI with Internet of Things (IoT) devices and wearable technology will create comprehensive health monitoring ecosystems. Smart devices will continuously collect health data, and AI systems will analyze this information in real-time to provide insights and alerts. This continuous monitoring will enable early detection of health issues and support proactive care management. The combination of AI and IoT will create a new paradigm of connected, data-driven healthcare.

The future scope of AI in healthcare also includes addressing current limitations and challenges. Research is ongoing to improve AI explainability, reduce algorithmic bias, ensure data privacy, and integrate AI more seamlessly into clinical workflows. As these challenges are addressed, AI adoption in healthcare will accelerate, leading to improved patient outcomes, reduced costs, and more accessible healthcare services worldwide.`, title)
	default:
		return fmt.Sprintf(`%s represents a fundamental concept in modern technology and computing, particularly in the healthcare domain. This topic encompasses core principles, implementation strategies, and practical applications that are essential for understanding how technology transforms healthcare delivery and patient outcomes.

The key aspects of %s include technical specifications, architectural considerations, and implementation methodologies specific to healthcare environments. These elements work together to form a comprehensive understanding of how this technology functions within healthcare systems and how it can be effectively utilized to improve medical practices.

Important considerations include performance characteristics, scalability requirements, security implications for patient data, regulatory compliance, and integration challenges with existing healthcare infrastructure. Understanding these aspects is crucial for making informed decisions about adoption and implementation in healthcare settings.

This section provides a thorough examination of %s, covering theoretical foundations, practical applications in healthcare, and best practices that will help readers develop a comprehensive understanding of this important technical topic in the medical field.`, title, title, title)
	}
}
